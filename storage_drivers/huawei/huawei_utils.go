// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package huawei

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/doubletao318/OpenStack-Driver/logging"
	"github.com/doubletao318/OpenStack-Driver/storage"
	drivers "github.com/doubletao318/OpenStack-Driver/storage_drivers"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
	"github.com/doubletao318/OpenStack-Driver/utils/errors"
)

// EncodeName converts an opaque volume or snapshot ID into a name the array
// accepts. Array object names are limited to MaxNameLength characters, so the
// ID's leading segment stays readable and the rest is replaced with as much
// of the ID's MD5 digest as fits.
func EncodeName(id string) string {
	sum := md5.Sum([]byte(id))
	digest := hex.EncodeToString(sum[:])

	prefix := strings.SplitN(id, "-", 2)[0] + "-"

	n := MaxNameLength - len(prefix)
	if n < 0 {
		n = 0
	}
	if n > len(digest) {
		n = len(digest)
	}
	return prefix + digest[:n]
}

// OldEncodeName derives the name the 2.x driver releases gave an object.
// It exists only so lookups still find objects those releases created, and
// the negative sign of the hash doubles as the separator.
func OldEncodeName(id string) string {
	prefix := strings.SplitN(id, "-", 2)[0]

	hashed := strconv.FormatInt(legacyStringHash(id), 10)
	if strings.HasPrefix(hashed, "-") {
		return prefix + hashed
	}
	return prefix + "-" + hashed
}

// EncodeHostName shortens a host name that exceeds the array's name limit by
// replacing it with a truncated MD5 digest. Names within the limit are stored
// verbatim.
func EncodeHostName(name string) string {
	if len(name) > MaxNameLength {
		sum := md5.Sum([]byte(name))
		return hex.EncodeToString(sum[:])[:MaxNameLength]
	}
	return name
}

// OldEncodeHostName is the legacy counterpart of EncodeHostName, kept for
// looking up hosts registered by 2.x driver releases.
func OldEncodeHostName(name string) string {
	if len(name) > MaxNameLength {
		return strconv.FormatInt(legacyStringHash(name), 10)
	}
	return name
}

// legacyStringHash reproduces the CPython 2 64-bit string hash that old
// driver releases embedded in array object names. Arrays deployed by those
// releases still hold objects named with it, so the algorithm is frozen.
func legacyStringHash(s string) int64 {
	if len(s) == 0 {
		return 0
	}

	x := uint64(s[0]) << 7
	for i := 0; i < len(s); i++ {
		x = (1000003 * x) ^ uint64(s[i])
	}
	x ^= uint64(len(s))

	h := int64(x)
	if h == -1 {
		h = -2
	}
	return h
}

// GetVolumeMetadata returns a volume's user metadata in map form, folding
// key/value rows when that is the representation the caller supplied.
func GetVolumeMetadata(volume *storage.Volume) map[string]string {
	if volume.Metadata != nil {
		return volume.Metadata
	}
	return foldMetadataEntries(volume.VolumeMetadata)
}

// GetAdminMetadata returns a volume's admin metadata in map form.
func GetAdminMetadata(ctx context.Context, volume *storage.Volume) map[string]string {
	var metadata map[string]string
	if volume.AdminMetadata != nil {
		metadata = volume.AdminMetadata
	} else {
		metadata = foldMetadataEntries(volume.VolumeAdminMetadata)
	}

	Logc(ctx).WithFields(LogFields{"volume": volume.ID, "adminMetadata": metadata}).Debug("Got volume admin metadata.")
	return metadata
}

// GetSnapshotUserMetadata returns a snapshot's user metadata in map form.
func GetSnapshotUserMetadata(snapshot *storage.Snapshot) map[string]string {
	if snapshot.Metadata != nil {
		return snapshot.Metadata
	}
	return foldMetadataEntries(snapshot.SnapshotMetadata)
}

// Later rows overwrite earlier ones.
func foldMetadataEntries(entries []storage.MetadataEntry) map[string]string {
	metadata := make(map[string]string, len(entries))
	for _, entry := range entries {
		metadata[entry.Key] = entry.Value
	}
	return metadata
}

// LunMetadata is the driver's record of the array LUN backing a volume,
// stored JSON-encoded in the volume's provider location.
type LunMetadata struct {
	LunID      string `json:"huawei_lun_id"`
	LunWWN     string `json:"huawei_lun_wwn,omitempty"`
	SN         string `json:"huawei_sn,omitempty"`
	Hypermetro bool   `json:"hypermetro"`
}

// Location serializes the record for the volume's provider location field.
func (m *LunMetadata) Location() string {
	location, _ := json.Marshal(m)
	return string(location)
}

// SnapshotMetadata is the driver's record of an array snapshot, stored
// JSON-encoded in the snapshot's provider location.
type SnapshotMetadata struct {
	SnapshotID  string `json:"huawei_snapshot_id"`
	SnapshotWWN string `json:"huawei_snapshot_wwn,omitempty"`
}

// Location serializes the record for the snapshot's provider location field.
func (m *SnapshotMetadata) Location() string {
	location, _ := json.Marshal(m)
	return string(location)
}

// GetLunMetadata reads the LUN record out of a volume's provider location.
// Volumes created by 2.x driver releases stored the bare LUN ID there, with
// the rest of the record spread over the volume's metadata.
func GetLunMetadata(ctx context.Context, volume *storage.Volume) (*LunMetadata, error) {
	if volume.ProviderLocation == "" {
		Logc(ctx).WithField("volume", volume.ID).Debug("Volume has no provider location.")
		return &LunMetadata{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(volume.ProviderLocation), &decoded); err != nil {
		Logc(ctx).WithFields(LogFields{
			"volume": volume.ID,
			"error":  err,
		}).Error("Could not decode volume provider location.")
		e, _ := errors.AsInvalidJSONError(err)
		return nil, e
	}

	if _, ok := decoded.(map[string]any); ok {
		metadata := new(LunMetadata)
		if err := json.Unmarshal([]byte(volume.ProviderLocation), metadata); err != nil {
			e, _ := errors.AsInvalidJSONError(err)
			return nil, e
		}
		return metadata, nil
	}

	userMetadata := GetVolumeMetadata(volume)
	return &LunMetadata{
		LunID:      scalarToString(decoded),
		LunWWN:     GetAdminMetadata(ctx, volume)["huawei_lun_wwn"],
		SN:         userMetadata["huawei_sn"],
		Hypermetro: userMetadata["hypermetro_id"] != "",
	}, nil
}

// GetSnapshotMetadata reads the snapshot record out of a snapshot's provider
// location, reconstructing it from the snapshot's metadata when the location
// holds a legacy bare ID.
func GetSnapshotMetadata(ctx context.Context, snapshot *storage.Snapshot) (*SnapshotMetadata, error) {
	if snapshot.ProviderLocation == "" {
		Logc(ctx).WithField("snapshot", snapshot.ID).Debug("Snapshot has no provider location.")
		return &SnapshotMetadata{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(snapshot.ProviderLocation), &decoded); err != nil {
		Logc(ctx).WithFields(LogFields{
			"snapshot": snapshot.ID,
			"error":    err,
		}).Error("Could not decode snapshot provider location.")
		e, _ := errors.AsInvalidJSONError(err)
		return nil, e
	}

	if _, ok := decoded.(map[string]any); ok {
		metadata := new(SnapshotMetadata)
		if err := json.Unmarshal([]byte(snapshot.ProviderLocation), metadata); err != nil {
			e, _ := errors.AsInvalidJSONError(err)
			return nil, e
		}
		return metadata, nil
	}

	return &SnapshotMetadata{
		SnapshotID:  scalarToString(decoded),
		SnapshotWWN: GetSnapshotUserMetadata(snapshot)["huawei_snapshot_wwn"],
	}, nil
}

// scalarToString renders a decoded JSON scalar the way the array reports its
// IDs, with numbers kept integral.
func scalarToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// GetVolumeLunID finds the array LUN backing a volume. Current deployments
// find it under the encoded name, older ones under the legacy name, and as a
// last resort the ID recorded at creation time is used. The WWN always comes
// from the record, the array is never asked for it. A volume with no LUN
// anywhere returns "", not an error.
func GetVolumeLunID(
	ctx context.Context, client api.OceanStorAPI, volume *storage.Volume,
) (string, string, error) {
	metadata, err := GetLunMetadata(ctx, volume)
	if err != nil {
		return "", "", err
	}

	lunID, err := client.GetLunIDByName(ctx, EncodeName(volume.ID))
	if err != nil {
		return "", "", err
	}
	if lunID == "" {
		lunID, err = client.GetLunIDByName(ctx, OldEncodeName(volume.ID))
		if err != nil {
			return "", "", err
		}
	}
	if lunID == "" {
		lunID = metadata.LunID
	}

	return lunID, metadata.LunWWN, nil
}

// GetSnapshotID finds the array snapshot backing a snapshot object, walking
// the same chain of encoded name, legacy name and recorded ID as volumes.
func GetSnapshotID(
	ctx context.Context, client api.OceanStorAPI, snapshot *storage.Snapshot,
) (string, string, error) {
	metadata, err := GetSnapshotMetadata(ctx, snapshot)
	if err != nil {
		return "", "", err
	}

	snapshotID, err := client.GetSnapshotIDByName(ctx, EncodeName(snapshot.ID))
	if err != nil {
		return "", "", err
	}
	if snapshotID == "" {
		snapshotID, err = client.GetSnapshotIDByName(ctx, OldEncodeName(snapshot.ID))
		if err != nil {
			return "", "", err
		}
	}
	if snapshotID == "" {
		snapshotID = metadata.SnapshotID
	}

	return snapshotID, metadata.SnapshotWWN, nil
}

// GetHostID finds a host by its encoded name. Host names within the array's
// length limit are stored verbatim, so when encoding changed nothing there is
// no legacy variant left to try.
func GetHostID(ctx context.Context, client api.OceanStorAPI, hostName string) (string, error) {
	encoded := EncodeHostName(hostName)

	hostID, err := client.GetHostIDByName(ctx, encoded)
	if err != nil {
		return "", err
	}
	if encoded == hostName {
		return hostID, nil
	}

	if hostID == "" {
		hostID, err = client.GetHostIDByName(ctx, OldEncodeHostName(hostName))
		if err != nil {
			return "", err
		}
	}
	return hostID, nil
}

var errConditionNotMet = errors.New("condition not met")

// WaitForCondition polls check at a fixed interval until it reports true,
// returning a backend API error when check itself fails or when timeout
// elapses first. The call blocks the caller.
func WaitForCondition(ctx context.Context, check func() (bool, error), interval, timeout time.Duration) error {
	checkName := runtime.FuncForPC(reflect.ValueOf(check).Pointer()).Name()

	checkOnce := func() error {
		done, err := check()
		if err != nil {
			// A failing check ends the poll immediately.
			return backoff.Permanent(errors.WrapWithBackendAPIError(err, "condition check failed"))
		}
		if !done {
			return errConditionNotMet
		}
		return nil
	}
	checkNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{"condition": checkName, "increment": duration}).Debug(
			"Condition not yet met, waiting.")
	}

	poll := backoff.NewExponentialBackOff()
	poll.InitialInterval = interval
	poll.MaxInterval = interval
	poll.Multiplier = 1
	poll.RandomizationFactor = 0
	poll.MaxElapsedTime = timeout

	if err := backoff.RetryNotify(checkOnce, backoff.WithContext(poll, ctx), checkNotify); err != nil {
		if errors.IsBackendAPIError(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errors.BackendAPIError("wait for condition: %s timed out after %v", checkName, timeout)
	}

	return nil
}

// CheckFeatureAvailable reports whether any of the given license features is
// in a usable state.
func CheckFeatureAvailable(featureStatus map[string]int, features []string) bool {
	for _, feature := range features {
		if AvailableFeatureStatus[featureStatus[feature]] {
			return true
		}
	}
	return false
}

// IsSupportClonePair reports whether the array firmware is recent enough to
// clone a LUN with a clone pair instead of a snapshot plus LUN copy.
func IsSupportClonePair(ctx context.Context, client api.OceanStorAPI) (bool, error) {
	arrayInfo, err := client.GetArrayInfo(ctx)
	if err != nil {
		return false, err
	}
	return arrayInfo.ProductVersion >= SupportClonePairVersion, nil
}

// GetVolumeSize returns a volume's capacity in 512-byte sectors, applying
// the 1 GiB floor for volumes that carry no size.
func GetVolumeSize(volume *storage.Volume) int64 {
	if volume.Size == 0 {
		return drivers.DefaultVolumeSizeGiB * CapacityUnit
	}
	return volume.Size * CapacityUnit
}

// VolumeOpts is the set of per-volume options the scheduler's extra specs
// can request. Dedup and Compression stay nil when unspecified so that the
// array defaults apply.
type VolumeOpts struct {
	Dedup              *bool
	Compression        *bool
	Hypermetro         bool
	ReplicationEnabled bool
	Policy             string
	ApplicationType    bool
	ApplicationName    string
}

// ParseVolumeOpts interprets extra specs. Boolean specs accept both plain
// booleans and the scheduler's "<is> true" form.
func ParseVolumeOpts(specs map[string]string) (*VolumeOpts, error) {
	opts := &VolumeOpts{}

	for key, value := range specs {
		switch key {
		case specDedup:
			enabled, err := parseBoolSpec(key, value)
			if err != nil {
				return nil, err
			}
			opts.Dedup = &enabled
		case specCompression:
			enabled, err := parseBoolSpec(key, value)
			if err != nil {
				return nil, err
			}
			opts.Compression = &enabled
		case specHypermetro:
			enabled, err := parseBoolSpec(key, value)
			if err != nil {
				return nil, err
			}
			opts.Hypermetro = enabled
		case specReplication:
			enabled, err := parseBoolSpec(key, value)
			if err != nil {
				return nil, err
			}
			opts.ReplicationEnabled = enabled
		case specSmartTierPolicy:
			opts.Policy = value
		case specApplicationType:
			enabled, err := parseBoolSpec(key, value)
			if err != nil {
				return nil, err
			}
			opts.ApplicationType = enabled
		case specApplicationName:
			opts.ApplicationName = value
		}
	}

	return opts, nil
}

// ResolveApplicationType validates the application type pair of specs.
// Requesting a typed application without naming one cannot be served.
func (o *VolumeOpts) ResolveApplicationType() error {
	if !o.ApplicationType {
		o.ApplicationName = ""
		return nil
	}
	if o.ApplicationName == "" {
		return errors.InvalidInputError(
			"extra spec %s is set but %s is missing", specApplicationType, specApplicationName)
	}
	return nil
}

func parseBoolSpec(key, value string) (bool, error) {
	words := strings.Fields(value)
	if len(words) == 2 && words[0] == "<is>" {
		value = words[1]
	}

	result, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false, errors.InvalidInputError("extra spec %s has invalid boolean value %q", key, value)
	}
	return result, nil
}
