// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

// Package huawei provides a block storage driver for Huawei OceanStor arrays.
// Volumes are provisioned as LUNs over the DeviceManager REST API, with
// object names derived from the service-side IDs so that any replica of the
// driver can find its objects again.
package huawei

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	driverconfig "github.com/doubletao318/OpenStack-Driver/config"
	. "github.com/doubletao318/OpenStack-Driver/logging"
	"github.com/doubletao318/OpenStack-Driver/storage"
	drivers "github.com/doubletao318/OpenStack-Driver/storage_drivers"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
	"github.com/doubletao318/OpenStack-Driver/utils/errors"
)

// SANStorageDriver is for block storage provisioning on OceanStor arrays via
// the DeviceManager REST interface.
type SANStorageDriver struct {
	initialized bool
	Config      drivers.HuaweiStorageDriverConfig
	API         api.OceanStorAPI

	// License feature states cached at initialization, keyed by feature name.
	featureStatus map[string]int

	// Array serial number, recorded into each volume's LUN record.
	arraySN string
}

func (d *SANStorageDriver) Name() string {
	return drivers.HuaweiSANStorageDriverName
}

// BackendName returns the name of the backend managed by this driver instance.
func (d *SANStorageDriver) BackendName() string {
	if d.Config.BackendName == "" {
		return d.Name()
	}
	return d.Config.BackendName
}

func (d *SANStorageDriver) Initialized() bool {
	return d.initialized
}

// Initialize from the provided config
func (d *SANStorageDriver) Initialize(
	ctx context.Context, driverContext driverconfig.DriverContext, configJSON string,
	commonConfig *drivers.CommonStorageDriverConfig,
) error {
	// Trace logging hasn't been set up yet, so always do it here
	fields := LogFields{"Method": "Initialize", "Type": "SANStorageDriver"}
	Logc(ctx).WithFields(fields).Debug(">>>> Initialize")
	defer Logc(ctx).WithFields(fields).Debug("<<<< Initialize")

	commonConfig.DriverContext = driverContext

	config := &drivers.HuaweiStorageDriverConfig{}
	config.CommonStorageDriverConfig = commonConfig

	// Decode configJSON into HuaweiStorageDriverConfig object
	if err := json.Unmarshal([]byte(configJSON), config); err != nil {
		return fmt.Errorf("could not decode JSON configuration: %v", err)
	}

	d.populateConfigurationDefaults(ctx, config)
	d.Config = *config

	if err := d.validate(ctx); err != nil {
		return fmt.Errorf("could not validate SANStorageDriver config: %v", err)
	}

	client, err := api.NewAPIClient(ctx, api.ClientConfig{
		ManagementURLs:     config.ManagementURLs,
		Username:           config.Username,
		Password:           config.Password,
		VStoreName:         config.VStoreName,
		InsecureSkipVerify: config.InsecureSkipVerify,
		DebugTraceFlags:    config.DebugTraceFlags,
	})
	if err != nil {
		return fmt.Errorf("could not create REST API client: %v", err)
	}
	d.API = client

	if err = d.API.Login(ctx); err != nil {
		return fmt.Errorf("could not log into the storage array: %v", err)
	}

	arrayInfo, err := d.API.GetArrayInfo(ctx)
	if err != nil {
		return fmt.Errorf("could not read storage array info: %v", err)
	}
	d.arraySN = arrayInfo.ID

	Logc(ctx).WithFields(LogFields{
		"name":           arrayInfo.Name,
		"productMode":    arrayInfo.ProductMode,
		"productVersion": arrayInfo.ProductVersion,
		"wwn":            arrayInfo.WWN,
	}).Info("Connected to storage array.")

	// Option gating in Create relies on the license state, so a driver that
	// cannot read it must not come up.
	d.featureStatus, err = d.API.GetLicenseFeatures(ctx)
	if err != nil {
		return fmt.Errorf("could not read license features: %v", err)
	}

	d.initialized = true
	return nil
}

func (d *SANStorageDriver) Terminate(ctx context.Context) {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "Terminate", "Type": "SANStorageDriver"}
		Logc(ctx).WithFields(fields).Debug(">>>> Terminate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Terminate")
	}

	if d.API != nil {
		d.API.Logout(ctx)
	}
	d.initialized = false
}

// populateConfigurationDefaults fills in default values for configuration settings if not supplied in the config
func (d *SANStorageDriver) populateConfigurationDefaults(
	ctx context.Context, config *drivers.HuaweiStorageDriverConfig,
) {
	if config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "populateConfigurationDefaults", "Type": "SANStorageDriver"}
		Logc(ctx).WithFields(fields).Debug(">>>> populateConfigurationDefaults")
		defer Logc(ctx).WithFields(fields).Debug("<<<< populateConfigurationDefaults")
	}

	if config.Size == 0 {
		config.Size = drivers.DefaultVolumeSizeGiB
	}
	if config.LunType == "" {
		config.LunType = LunTypeThin
	}
	if config.LunCopySpeed == "" {
		config.LunCopySpeed = DefaultLunCopySpeed
	}
	if config.LunCopyWaitInterval == 0 {
		config.LunCopyWaitInterval = int64(defaultLunCopyWaitInterval.Seconds())
	}
	if config.LunTimeout == 0 {
		config.LunTimeout = int64(defaultLunTimeout.Seconds())
	}

	Logc(ctx).WithFields(LogFields{
		"Size":                config.Size,
		"LunType":             config.LunType,
		"LunCopySpeed":        config.LunCopySpeed,
		"LunCopyWaitInterval": config.LunCopyWaitInterval,
		"LunTimeout":          config.LunTimeout,
	}).Debug("Configuration defaults")
}

// validate the driver configuration
func (d *SANStorageDriver) validate(ctx context.Context) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "validate", "Type": "SANStorageDriver"}
		Logc(ctx).WithFields(fields).Debug(">>>> validate")
		defer Logc(ctx).WithFields(fields).Debug("<<<< validate")
	}

	if len(d.Config.ManagementURLs) == 0 {
		return errors.New("managementURLs is empty; specify at least one DeviceManager endpoint, " +
			"e.g. https://1.2.3.4:8088/deviceManager/rest")
	}
	if d.Config.Username == "" || d.Config.Password == "" {
		return errors.New("username and password must both be specified")
	}

	switch d.Config.LunType {
	case LunTypeThin, LunTypeThick:
	default:
		return fmt.Errorf("invalid lunType %q; expected %q or %q", d.Config.LunType, LunTypeThin, LunTypeThick)
	}

	switch d.Config.LunCopySpeed {
	case LunCopySpeedLow, LunCopySpeedMedium, LunCopySpeedHigh, LunCopySpeedHighest:
	default:
		return fmt.Errorf("invalid lunCopySpeed %q; expected a value between %s and %s",
			d.Config.LunCopySpeed, LunCopySpeedLow, LunCopySpeedHighest)
	}

	return nil
}

// Create builds a LUN backing the given volume, picking the pool from the
// volume's scheduler host string and applying any extra specs. On success the
// volume's provider location holds the LUN record.
func (d *SANStorageDriver) Create(ctx context.Context, volume *storage.Volume, specs map[string]string) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{
			"Method": "Create",
			"Type":   "SANStorageDriver",
			"volume": volume.ID,
			"specs":  specs,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> Create")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Create")
	}

	opts, err := ParseVolumeOpts(specs)
	if err != nil {
		return err
	}
	if err = opts.ResolveApplicationType(); err != nil {
		return err
	}
	if err = d.checkVolumeOpts(opts); err != nil {
		return err
	}

	poolID, err := d.resolvePoolID(ctx, volume)
	if err != nil {
		return err
	}

	workloadTypeID := ""
	if opts.ApplicationName != "" {
		workloadTypeID, err = d.API.GetWorkloadTypeID(ctx, opts.ApplicationName)
		if err != nil {
			return err
		}
		if workloadTypeID == "" {
			return errors.InvalidInputError(
				"the workload type %s does not exist on the array; create it there first", opts.ApplicationName)
		}
	}

	allocType := api.AllocTypeThin
	if d.Config.LunType == LunTypeThick {
		allocType = api.AllocTypeThick
	}

	lun, err := d.API.CreateLun(ctx, &api.LunCreateRequest{
		Name:           EncodeName(volume.ID),
		ParentID:       poolID,
		Capacity:       GetVolumeSize(volume),
		AllocType:      allocType,
		WorkloadTypeID: workloadTypeID,
		Description:    volume.Name,
	})
	if err != nil {
		return err
	}

	if err = d.waitLunOnline(ctx, lun.ID); err != nil {
		// A LUN that never came online is useless, remove it again.
		if deleteErr := d.API.DeleteLun(ctx, lun.ID); deleteErr != nil {
			Logc(ctx).WithFields(LogFields{
				"lun":   lun.ID,
				"error": deleteErr,
			}).Error("Could not clean up LUN after failed create.")
		}
		return err
	}

	metadata := &LunMetadata{
		LunID:      lun.ID,
		LunWWN:     lun.WWN,
		SN:         d.arraySN,
		Hypermetro: opts.Hypermetro,
	}
	volume.ProviderLocation = metadata.Location()

	Logc(ctx).WithFields(LogFields{
		"volume": volume.ID,
		"lun":    lun.ID,
		"pool":   poolID,
	}).Debug("Create succeeded.")

	return nil
}

// resolvePoolID maps the volume's scheduler pool, or the first configured
// pool when the host string carries none, to the array pool ID.
func (d *SANStorageDriver) resolvePoolID(ctx context.Context, volume *storage.Volume) (string, error) {
	poolName := storage.PoolFromHost(volume.Host)
	if poolName == drivers.UnsetPool {
		if len(d.Config.StoragePools) == 0 {
			return "", errors.InvalidInputError(
				"volume %s names no storage pool and none is configured", volume.ID)
		}
		poolName = d.Config.StoragePools[0]
	}

	poolID, err := d.API.GetPoolIDByName(ctx, poolName)
	if err != nil {
		return "", err
	}
	if poolID == "" {
		return "", errors.BackendAPIError("storage pool %s does not exist on the array", poolName)
	}
	return poolID, nil
}

// checkVolumeOpts rejects option combinations the array cannot serve, either
// because two options conflict or because a required feature is unlicensed.
func (d *SANStorageDriver) checkVolumeOpts(opts *VolumeOpts) error {
	if opts.Hypermetro && opts.ReplicationEnabled {
		return errors.InvalidInputError("hypermetro and replication cannot be used in the same volume type")
	}

	required := make([]string, 0, 4)
	if opts.Dedup != nil && *opts.Dedup {
		required = append(required, "dedup")
	}
	if opts.Compression != nil && *opts.Compression {
		required = append(required, "compression")
	}
	if opts.Hypermetro {
		required = append(required, "hypermetro")
	}
	if opts.ReplicationEnabled {
		required = append(required, "replication")
	}
	if opts.Policy != "" {
		required = append(required, "smarttier")
	}

	for _, option := range required {
		if !CheckFeatureAvailable(d.featureStatus, featurePairs[option]) {
			return errors.UnlicensedError("the %s feature is not licensed on the array", option)
		}
	}
	return nil
}

// Destroy removes the LUN backing a volume. A volume whose LUN is gone from
// the array is already destroyed, so nothing is reported.
func (d *SANStorageDriver) Destroy(ctx context.Context, volume *storage.Volume) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "Destroy", "Type": "SANStorageDriver", "volume": volume.ID}
		Logc(ctx).WithFields(fields).Debug(">>>> Destroy")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Destroy")
	}

	lunID, _, err := GetVolumeLunID(ctx, d.API, volume)
	if err != nil {
		return err
	}
	if lunID == "" {
		Logc(ctx).WithField("volume", volume.ID).Debug("LUN not found, skipping delete.")
		return nil
	}

	return d.API.DeleteLun(ctx, lunID)
}

// CreateSnapshot takes an array snapshot of the volume backing the given
// snapshot object and activates it. On success the snapshot's provider
// location holds the snapshot record.
func (d *SANStorageDriver) CreateSnapshot(ctx context.Context, snapshot *storage.Snapshot) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "CreateSnapshot", "Type": "SANStorageDriver", "snapshot": snapshot.ID}
		Logc(ctx).WithFields(fields).Debug(">>>> CreateSnapshot")
		defer Logc(ctx).WithFields(fields).Debug("<<<< CreateSnapshot")
	}

	volume := snapshot.Volume
	if volume == nil {
		volume = &storage.Volume{ID: snapshot.VolumeID}
	}

	lunID, _, err := GetVolumeLunID(ctx, d.API, volume)
	if err != nil {
		return err
	}
	if lunID == "" {
		return errors.NotFoundError("volume %s has no LUN on the array", volume.ID)
	}

	created, err := d.API.CreateSnapshot(ctx, &api.SnapshotCreateRequest{
		Name:        EncodeName(snapshot.ID),
		ParentID:    lunID,
		ParentType:  api.ObjectTypeLun,
		Description: snapshot.Name,
	})
	if err != nil {
		return err
	}

	if err = d.API.ActivateSnapshot(ctx, created.ID); err == nil {
		err = d.waitSnapshotReady(ctx, created.ID)
	}
	if err != nil {
		if deleteErr := d.API.DeleteSnapshot(ctx, created.ID); deleteErr != nil {
			Logc(ctx).WithFields(LogFields{
				"snapshot": created.ID,
				"error":    deleteErr,
			}).Error("Could not clean up snapshot after failed create.")
		}
		return err
	}

	metadata := &SnapshotMetadata{SnapshotID: created.ID, SnapshotWWN: created.WWN}
	snapshot.ProviderLocation = metadata.Location()

	return nil
}

// DeleteSnapshot removes an array snapshot, deactivating it first if needed.
// A snapshot already gone from the array is not an error.
func (d *SANStorageDriver) DeleteSnapshot(ctx context.Context, snapshot *storage.Snapshot) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "DeleteSnapshot", "Type": "SANStorageDriver", "snapshot": snapshot.ID}
		Logc(ctx).WithFields(fields).Debug(">>>> DeleteSnapshot")
		defer Logc(ctx).WithFields(fields).Debug("<<<< DeleteSnapshot")
	}

	snapshotID, _, err := GetSnapshotID(ctx, d.API, snapshot)
	if err != nil {
		return err
	}
	if snapshotID == "" {
		Logc(ctx).WithField("snapshot", snapshot.ID).Debug("Snapshot not found, skipping delete.")
		return nil
	}

	info, err := d.API.GetSnapshotInfoByID(ctx, snapshotID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	if info.RunningStatus == SnapshotActivated {
		if err = d.API.StopSnapshot(ctx, snapshotID); err != nil {
			return err
		}
	}

	return d.API.DeleteSnapshot(ctx, snapshotID)
}

// CreateClone builds a new volume holding a copy of the source volume's data.
// Arrays with clone pair support copy LUN to LUN directly; older arrays go
// through a temporary snapshot and a LUN copy.
func (d *SANStorageDriver) CreateClone(
	ctx context.Context, volume, source *storage.Volume, specs map[string]string,
) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{
			"Method": "CreateClone",
			"Type":   "SANStorageDriver",
			"volume": volume.ID,
			"source": source.ID,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> CreateClone")
		defer Logc(ctx).WithFields(fields).Debug("<<<< CreateClone")
	}

	if source.Size > 0 && volume.Size > 0 && volume.Size < source.Size {
		return errors.InvalidInputError(
			"clone size %d GiB is smaller than the source volume size %d GiB", volume.Size, source.Size)
	}

	sourceLunID, _, err := GetVolumeLunID(ctx, d.API, source)
	if err != nil {
		return err
	}
	if sourceLunID == "" {
		return errors.NotFoundError("source volume %s has no LUN on the array", source.ID)
	}

	// The clone target is an ordinary volume until the data lands on it.
	if err = d.Create(ctx, volume, specs); err != nil {
		return err
	}

	if err = d.copyLunData(ctx, source, sourceLunID, volume); err != nil {
		if destroyErr := d.Destroy(ctx, volume); destroyErr != nil {
			Logc(ctx).WithFields(LogFields{
				"volume": volume.ID,
				"error":  destroyErr,
			}).Error("Could not clean up clone target after failed copy.")
		}
		volume.ProviderLocation = ""
		return err
	}

	return nil
}

// copyLunData moves the source LUN's contents onto the freshly created clone
// target.
func (d *SANStorageDriver) copyLunData(
	ctx context.Context, source *storage.Volume, sourceLunID string, volume *storage.Volume,
) error {
	metadata, err := GetLunMetadata(ctx, volume)
	if err != nil {
		return err
	}
	targetLunID := metadata.LunID

	supported, err := IsSupportClonePair(ctx, d.API)
	if err != nil {
		return err
	}

	if supported {
		pairID, err := d.API.CreateClonePair(ctx, sourceLunID, targetLunID, d.Config.LunCopySpeed)
		if err != nil {
			return err
		}
		if err = d.API.SyncClonePair(ctx, pairID); err != nil {
			if deleteErr := d.API.DeleteClonePair(ctx, pairID); deleteErr != nil {
				Logc(ctx).WithFields(LogFields{
					"clonePair": pairID,
					"error":     deleteErr,
				}).Error("Could not clean up clone pair after failed sync.")
			}
			return err
		}
		return d.waitClonePairDone(ctx, pairID)
	}

	// Older firmware copies through a snapshot, which needs the HyperCopy
	// license.
	if !CheckFeatureAvailable(d.featureStatus, featurePairs["luncopy"]) {
		return errors.UnlicensedError("the luncopy feature is not licensed on the array")
	}

	tempSnapshot := &storage.Snapshot{
		ID:       uuid.New().String(),
		VolumeID: source.ID,
		Volume:   source,
		Name:     "tmp-clone-" + volume.ID,
	}
	if err = d.CreateSnapshot(ctx, tempSnapshot); err != nil {
		return err
	}
	defer func() {
		if deleteErr := d.DeleteSnapshot(ctx, tempSnapshot); deleteErr != nil {
			Logc(ctx).WithFields(LogFields{
				"snapshot": tempSnapshot.ID,
				"error":    deleteErr,
			}).Error("Could not clean up temporary clone snapshot.")
		}
	}()

	snapshotMetadata, err := GetSnapshotMetadata(ctx, tempSnapshot)
	if err != nil {
		return err
	}

	copyID, err := d.API.CreateLunCopy(
		ctx, EncodeName(volume.ID), snapshotMetadata.SnapshotID, targetLunID, d.Config.LunCopySpeed)
	if err != nil {
		return err
	}
	if err = d.API.StartLunCopy(ctx, copyID); err != nil {
		if deleteErr := d.API.DeleteLunCopy(ctx, copyID); deleteErr != nil {
			Logc(ctx).WithFields(LogFields{
				"lunCopy": copyID,
				"error":   deleteErr,
			}).Error("Could not clean up LUN copy after failed start.")
		}
		return err
	}
	return d.waitLunCopyDone(ctx, copyID)
}

// Resize grows the LUN backing a volume to the requested size.
func (d *SANStorageDriver) Resize(ctx context.Context, volume *storage.Volume, newSizeGiB int64) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{
			"Method":     "Resize",
			"Type":       "SANStorageDriver",
			"volume":     volume.ID,
			"newSizeGiB": newSizeGiB,
		}
		Logc(ctx).WithFields(fields).Debug(">>>> Resize")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Resize")
	}

	lunID, _, err := GetVolumeLunID(ctx, d.API, volume)
	if err != nil {
		return err
	}
	if lunID == "" {
		return errors.NotFoundError("volume %s has no LUN on the array", volume.ID)
	}

	lun, err := d.API.GetLunInfoByID(ctx, lunID)
	if err != nil {
		return err
	}
	currentSectors, err := strconv.ParseInt(lun.Capacity, 10, 64)
	if err != nil {
		return errors.BackendAPIError("could not parse LUN %s capacity %q", lunID, lun.Capacity)
	}

	newSectors := newSizeGiB * CapacityUnit
	if newSectors < currentSectors {
		return errors.InvalidInputError(
			"new size %d GiB is smaller than the current LUN size; shrinking a volume is not supported", newSizeGiB)
	}
	if newSectors == currentSectors {
		volume.Size = newSizeGiB
		return nil
	}

	if err = d.API.ExtendLun(ctx, lunID, newSectors); err != nil {
		return err
	}
	volume.Size = newSizeGiB

	return nil
}

// Get probes whether the volume's LUN exists on the array.
func (d *SANStorageDriver) Get(ctx context.Context, volume *storage.Volume) error {
	if d.Config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "Get", "Type": "SANStorageDriver", "volume": volume.ID}
		Logc(ctx).WithFields(fields).Debug(">>>> Get")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Get")
	}

	lunID, _, err := GetVolumeLunID(ctx, d.API, volume)
	if err != nil {
		return err
	}
	if lunID == "" {
		return errors.NotFoundError("volume %s was not found on the array", volume.ID)
	}
	return nil
}

func (d *SANStorageDriver) lunCopyWaitInterval() time.Duration {
	if d.Config.LunCopyWaitInterval > 0 {
		return time.Duration(d.Config.LunCopyWaitInterval) * time.Second
	}
	return defaultLunCopyWaitInterval
}

func (d *SANStorageDriver) lunTimeout() time.Duration {
	if d.Config.LunTimeout > 0 {
		return time.Duration(d.Config.LunTimeout) * time.Second
	}
	return defaultLunTimeout
}

func (d *SANStorageDriver) waitLunOnline(ctx context.Context, lunID string) error {
	checkLunOnline := func() (bool, error) {
		lun, err := d.API.GetLunInfoByID(ctx, lunID)
		if err != nil {
			return false, err
		}
		if lun.HealthStatus != StatusHealth {
			return false, errors.BackendAPIError("LUN %s is abnormal", lunID)
		}
		return lun.RunningStatus == StatusVolumeReady, nil
	}

	return WaitForCondition(ctx, checkLunOnline, DefaultWaitInterval, 10*DefaultWaitInterval)
}

func (d *SANStorageDriver) waitSnapshotReady(ctx context.Context, snapshotID string) error {
	checkSnapshotReady := func() (bool, error) {
		snapshot, err := d.API.GetSnapshotInfoByID(ctx, snapshotID)
		if err != nil {
			return false, err
		}
		if snapshot.HealthStatus != StatusHealth {
			return false, errors.BackendAPIError("snapshot %s is abnormal", snapshotID)
		}
		return snapshot.RunningStatus == SnapshotActivated, nil
	}

	return WaitForCondition(ctx, checkSnapshotReady, DefaultWaitInterval, 10*DefaultWaitInterval)
}

// waitClonePairDone blocks until the clone pair has synchronized, then
// dissolves it. The pair is only the copy mechanism, the target LUN remains.
func (d *SANStorageDriver) waitClonePairDone(ctx context.Context, pairID string) error {
	checkClonePairDone := func() (bool, error) {
		pair, err := d.API.GetClonePairInfo(ctx, pairID)
		if err != nil {
			return false, err
		}
		if pair.CopyStatus != ClonePairHealthy {
			return false, errors.BackendAPIError("clone pair %s is abnormal", pairID)
		}
		return pair.SyncStatus == ClonePairComplete, nil
	}

	if err := WaitForCondition(ctx, checkClonePairDone, d.lunCopyWaitInterval(), d.lunTimeout()); err != nil {
		return err
	}
	return d.API.DeleteClonePair(ctx, pairID)
}

// waitLunCopyDone blocks until the LUN copy has finished, then removes the
// copy object.
func (d *SANStorageDriver) waitLunCopyDone(ctx context.Context, copyID string) error {
	checkLunCopyDone := func() (bool, error) {
		lunCopy, err := d.API.GetLunCopyInfo(ctx, copyID)
		if err != nil {
			return false, err
		}
		if lunCopy.HealthStatus != StatusHealth {
			return false, errors.BackendAPIError("LUN copy %s is abnormal", copyID)
		}
		return lunCopy.RunningStatus == StatusLunCopyReady, nil
	}

	if err := WaitForCondition(ctx, checkLunCopyDone, d.lunCopyWaitInterval(), d.lunTimeout()); err != nil {
		return err
	}
	return d.API.DeleteLunCopy(ctx, copyID)
}
