// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

// This package provides a high-level interface to the OceanStor DeviceManager REST API.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	driverconfig "github.com/doubletao318/OpenStack-Driver/config"
	. "github.com/doubletao318/OpenStack-Driver/logging"
	"github.com/doubletao318/OpenStack-Driver/utils/errors"
	"github.com/doubletao318/OpenStack-Driver/utils/limiter"
)

const (
	// The array rejects sessions that issue more than 20 concurrent requests.
	maxConcurrentRequests = 20

	queryPageSize = 100

	// Scope of the login account, "0" selects a local array user.
	loginScope = "0"
)

// ClientConfig holds configuration data for the API driver object.
type ClientConfig struct {
	// Array management endpoints, tried in order until one answers
	ManagementURLs []string
	Username       string
	Password       string
	VStoreName     string

	// Options
	InsecureSkipVerify bool
	DebugTraceFlags    map[string]bool
}

// Client is the object to use for interacting with the array. A session is
// established lazily on the first call and re-established transparently when
// the array expires it.
type Client struct {
	config  *ClientConfig
	m       *sync.Mutex
	limiter limiter.Limiter

	// Session state, guarded by m
	baseURL  string
	token    string
	deviceID string
}

var _ OceanStorAPI = (*Client)(nil)

// NewAPIClient is a factory method for creating a new instance.
func NewAPIClient(ctx context.Context, config ClientConfig) (*Client, error) {
	requestLimiter, err := limiter.New(ctx, "oceanstor-rest", limiter.TypeSemaphoreN,
		limiter.WithSemaphoreNSize(ctx, maxConcurrentRequests))
	if err != nil {
		return nil, err
	}

	return &Client{
		config:  &config,
		m:       &sync.Mutex{},
		limiter: requestLimiter,
	}, nil
}

// Login opens a session against the first reachable management URL. The
// returned token and device ID scope every subsequent request.
func (d *Client) Login(ctx context.Context) error {
	if d.config.DebugTraceFlags["method"] {
		fields := LogFields{"Method": "Login", "Type": "Client"}
		Logc(ctx).WithFields(fields).Debug(">>>> Login")
		defer Logc(ctx).WithFields(fields).Debug("<<<< Login")
	}

	d.m.Lock()
	defer d.m.Unlock()

	loginRequest := &LoginRequest{
		Username:   d.config.Username,
		Password:   d.config.Password,
		Scope:      loginScope,
		VStoreName: d.config.VStoreName,
	}

	var lastErr error
	for i, managementURL := range d.config.ManagementURLs {
		base := strings.TrimSuffix(managementURL, "/")

		resp, err := d.httpCall(ctx, http.MethodPost, base+"/xx/sessions", "", loginRequest,
			time.Duration(driverconfig.LoginAPITimeoutSeconds*time.Second))
		if err != nil {
			Logc(ctx).WithField("url", base).WithError(err).Warning("Could not reach management endpoint.")
			lastErr = err
			continue
		}
		if resp.Error.Code != ErrorCodeSuccess {
			lastErr = errors.BackendAPIError("login rejected by %s: error code %d, %s",
				base, resp.Error.Code, resp.Error.Description)
			continue
		}

		data := new(LoginData)
		if err = decodeData(resp, data); err != nil {
			lastErr = err
			continue
		}

		d.baseURL = base + "/" + data.DeviceID
		d.token = data.IBaseToken
		d.deviceID = data.DeviceID

		// A relogin happens because the current controller dropped the
		// session, so start the next walk from a different one.
		rotated := make([]string, 0, len(d.config.ManagementURLs))
		rotated = append(rotated, d.config.ManagementURLs[i+1:]...)
		rotated = append(rotated, d.config.ManagementURLs[:i+1]...)
		d.config.ManagementURLs = rotated

		if passwordExpiredOrInitial[data.AccountState] {
			// The session itself is valid, so close it before failing.
			d.logoutLocked(ctx)
			return errors.New("storage array password is expired or initial, change the password and retry")
		}

		Logc(ctx).WithFields(LogFields{"url": base, "deviceID": data.DeviceID}).Debug("Logged in to storage array.")
		return nil
	}

	if lastErr == nil {
		lastErr = errors.New("no management URLs configured")
	}
	return lastErr
}

// Logout closes the array session, if one exists.
func (d *Client) Logout(ctx context.Context) {
	d.m.Lock()
	defer d.m.Unlock()
	d.logoutLocked(ctx)
}

func (d *Client) logoutLocked(ctx context.Context) {
	if d.token == "" {
		return
	}

	if _, err := d.httpCall(ctx, http.MethodDelete, d.baseURL+"/sessions", d.token, nil,
		time.Duration(driverconfig.StorageAPITimeoutSeconds*time.Second)); err != nil {
		Logc(ctx).WithError(err).Warning("Could not close array session.")
	}

	d.baseURL = ""
	d.token = ""
	d.deviceID = ""
}

func (d *Client) session() (string, string) {
	d.m.Lock()
	defer d.m.Unlock()
	return d.baseURL, d.token
}

// invoke sends one authenticated request to the array, logging in first if no
// session exists yet and retrying once after a relogin when the array reports
// the session as gone.
func (d *Client) invoke(ctx context.Context, method, resourcePath string, requestBody any) (*Response, error) {
	if baseURL, _ := d.session(); baseURL == "" {
		if err := d.Login(ctx); err != nil {
			return nil, err
		}
	}

	for attempt := 0; ; attempt++ {
		baseURL, token := d.session()

		resp, err := d.httpCall(ctx, method, baseURL+resourcePath, token, requestBody,
			time.Duration(driverconfig.StorageAPITimeoutSeconds*time.Second))
		if err != nil {
			return nil, err
		}

		if attempt == 0 &&
			(resp.Error.Code == ErrorCodeUnauthorized || resp.Error.Code == ErrorCodeConnectionFault) {
			Logc(ctx).WithField("errorCode", resp.Error.Code).Debug("Session rejected by array, logging in again.")
			if err = d.Login(ctx); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}
}

// httpCall performs a single REST round trip and decodes the response
// envelope. The concurrent request cap applies here so that logins count
// against it too.
func (d *Client) httpCall(
	ctx context.Context, method, requestURL, token string, requestBody any, timeout time.Duration,
) (*Response, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	defer d.limiter.Release(ctx)

	var reader io.Reader
	if requestBody != nil {
		jsonBytes, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("could not marshal JSON request: %v", err)
		}
		reader = bytes.NewReader(jsonBytes)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("iBaseToken", token)
	}

	// Request bodies are never logged, they may carry credentials.
	if d.config.DebugTraceFlags["api"] {
		Logc(ctx).WithFields(LogFields{"method": method, "url": requestURL}).Debug(">>>> REST request")
	}

	client := &http.Client{Timeout: timeout}
	if d.config.InsecureSkipVerify {
		// Allow certificate validation override
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	response, err := client.Do(request)
	if err != nil {
		Logc(ctx).Warnf("Error communicating with storage array. %v", err)
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if d.config.DebugTraceFlags["api"] {
		Logc(ctx).WithFields(LogFields{
			"method": method,
			"url":    requestURL,
			"status": response.Status,
		}).Debug("<<<< REST response")
	}

	apiResponse := new(Response)
	if err = json.Unmarshal(responseBody, apiResponse); err != nil {
		return nil, fmt.Errorf("could not parse API response: %v; %s", err, string(responseBody))
	}
	return apiResponse, nil
}

// apiError converts a non-zero envelope code into a backend API error.
func apiError(resp *Response, format string, a ...any) error {
	if resp.Error.Code == ErrorCodeSuccess {
		return nil
	}
	message := fmt.Sprintf(format, a...)
	return errors.BackendAPIError("%s: error code %d, %s", message, resp.Error.Code, resp.Error.Description)
}

// decodeData unmarshals the envelope payload into out. Responses with no
// payload leave out at its zero value.
func decodeData(resp *Response, out any) error {
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("could not parse API response data: %v; %s", err, string(resp.Data))
	}
	return nil
}

// nameFilter builds a filter query matching objects by exact name.
func nameFilter(name string) string {
	return "?filter=NAME::" + url.QueryEscape(name)
}

// GetArrayInfo returns identity and version information for the array.
func (d *Client) GetArrayInfo(ctx context.Context) (*ArrayInfo, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/system/", nil)
	if err != nil {
		return nil, err
	}
	if err = apiError(resp, "could not get array info"); err != nil {
		return nil, err
	}

	info := new(ArrayInfo)
	if err = decodeData(resp, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetLicenseFeatures returns the license state of every array feature. The
// array reports one single-entry object per feature, folded here into one map.
func (d *Client) GetLicenseFeatures(ctx context.Context) (map[string]int, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/license/feature", nil)
	if err != nil {
		return nil, err
	}
	if err = apiError(resp, "could not get license features"); err != nil {
		return nil, err
	}

	var rows []map[string]int
	if err = decodeData(resp, &rows); err != nil {
		return nil, err
	}

	features := make(map[string]int)
	for _, row := range rows {
		for name, status := range row {
			features[name] = status
		}
	}
	return features, nil
}

// GetStoragePools returns all storage pools on the array.
func (d *Client) GetStoragePools(ctx context.Context) ([]StoragePool, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/storagepool", nil)
	if err != nil {
		return nil, err
	}
	if err = apiError(resp, "could not list storage pools"); err != nil {
		return nil, err
	}

	var pools []StoragePool
	if err = decodeData(resp, &pools); err != nil {
		return nil, err
	}
	return pools, nil
}

// GetPoolIDByName returns the ID of the named pool, or "" if the array has no
// such pool.
func (d *Client) GetPoolIDByName(ctx context.Context, name string) (string, error) {
	pools, err := d.GetStoragePools(ctx)
	if err != nil {
		return "", err
	}

	for _, pool := range pools {
		if pool.Name == name {
			return pool.ID, nil
		}
	}
	return "", nil
}

// GetLuns returns all LUNs on the array, walking the paged listing.
func (d *Client) GetLuns(ctx context.Context) ([]Lun, error) {
	var luns []Lun
	for start := 0; ; start += queryPageSize {
		resourcePath := fmt.Sprintf("/lun?range=[%d-%d]", start, start+queryPageSize)

		resp, err := d.invoke(ctx, http.MethodGet, resourcePath, nil)
		if err != nil {
			return nil, err
		}
		if err = apiError(resp, "could not list luns"); err != nil {
			return nil, err
		}

		var page []Lun
		if err = decodeData(resp, &page); err != nil {
			return nil, err
		}
		luns = append(luns, page...)

		if len(page) < queryPageSize {
			return luns, nil
		}
	}
}

// GetLunIDByName returns the ID of the named LUN. A name with no match
// returns "", not an error.
func (d *Client) GetLunIDByName(ctx context.Context, name string) (string, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/lun"+nameFilter(name), nil)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not look up lun %s", name); err != nil {
		return "", err
	}

	var luns []Lun
	if err = decodeData(resp, &luns); err != nil {
		return "", err
	}
	if len(luns) == 0 {
		return "", nil
	}
	return luns[0].ID, nil
}

// GetLunInfoByID returns the LUN with the given ID.
func (d *Client) GetLunInfoByID(ctx context.Context, id string) (*Lun, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/lun/"+id, nil)
	if err != nil {
		return nil, err
	}
	if resp.Error.Code == ErrorCodeLunNotExist || resp.Error.Code == ErrorCodeObjectNotExist {
		return nil, errors.NotFoundError("lun %s not found", id)
	}
	if err = apiError(resp, "could not get lun %s", id); err != nil {
		return nil, err
	}

	lun := new(Lun)
	if err = decodeData(resp, lun); err != nil {
		return nil, err
	}
	return lun, nil
}

// CreateLun creates a LUN and returns the array's view of it.
func (d *Client) CreateLun(ctx context.Context, request *LunCreateRequest) (*Lun, error) {
	resp, err := d.invoke(ctx, http.MethodPost, "/lun", request)
	if err != nil {
		return nil, err
	}
	if err = apiError(resp, "could not create lun %s", request.Name); err != nil {
		return nil, err
	}

	lun := new(Lun)
	if err = decodeData(resp, lun); err != nil {
		return nil, err
	}
	return lun, nil
}

// DeleteLun deletes a LUN. Deleting a LUN that is already gone succeeds.
func (d *Client) DeleteLun(ctx context.Context, id string) error {
	resp, err := d.invoke(ctx, http.MethodDelete, "/lun/"+id, nil)
	if err != nil {
		return err
	}
	if resp.Error.Code == ErrorCodeLunNotExist || resp.Error.Code == ErrorCodeObjectNotExist {
		Logc(ctx).WithField("id", id).Debug("LUN already deleted.")
		return nil
	}
	return apiError(resp, "could not delete lun %s", id)
}

// ExtendLun grows a LUN to newSectorCapacity 512-byte sectors.
func (d *Client) ExtendLun(ctx context.Context, id string, newSectorCapacity int64) error {
	request := &LunExtendRequest{
		Type:     ObjectTypeLun,
		ID:       id,
		Capacity: newSectorCapacity,
	}

	resp, err := d.invoke(ctx, http.MethodPut, "/lun/expand", request)
	if err != nil {
		return err
	}
	return apiError(resp, "could not extend lun %s", id)
}

// GetSnapshotIDByName returns the ID of the named snapshot. A name with no
// match returns "", not an error.
func (d *Client) GetSnapshotIDByName(ctx context.Context, name string) (string, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/snapshot"+nameFilter(name), nil)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not look up snapshot %s", name); err != nil {
		return "", err
	}

	var snapshots []Snapshot
	if err = decodeData(resp, &snapshots); err != nil {
		return "", err
	}
	if len(snapshots) == 0 {
		return "", nil
	}
	return snapshots[0].ID, nil
}

// GetSnapshotInfoByID returns the snapshot with the given ID.
func (d *Client) GetSnapshotInfoByID(ctx context.Context, id string) (*Snapshot, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/snapshot/"+id, nil)
	if err != nil {
		return nil, err
	}
	if resp.Error.Code == ErrorCodeSnapshotNotExist || resp.Error.Code == ErrorCodeObjectNotExist {
		return nil, errors.NotFoundError("snapshot %s not found", id)
	}
	if err = apiError(resp, "could not get snapshot %s", id); err != nil {
		return nil, err
	}

	snapshot := new(Snapshot)
	if err = decodeData(resp, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// CreateSnapshot creates a snapshot of a LUN. The snapshot is inactive until
// ActivateSnapshot is called.
func (d *Client) CreateSnapshot(ctx context.Context, request *SnapshotCreateRequest) (*Snapshot, error) {
	resp, err := d.invoke(ctx, http.MethodPost, "/snapshot", request)
	if err != nil {
		return nil, err
	}
	if err = apiError(resp, "could not create snapshot %s", request.Name); err != nil {
		return nil, err
	}

	snapshot := new(Snapshot)
	if err = decodeData(resp, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ActivateSnapshot starts the copy-on-write tracking of a snapshot.
func (d *Client) ActivateSnapshot(ctx context.Context, id string) error {
	request := &SnapshotActivateRequest{SnapshotList: []string{id}}

	resp, err := d.invoke(ctx, http.MethodPost, "/snapshot/activate", request)
	if err != nil {
		return err
	}
	return apiError(resp, "could not activate snapshot %s", id)
}

// StopSnapshot deactivates a snapshot so that it can be deleted.
func (d *Client) StopSnapshot(ctx context.Context, id string) error {
	request := &SnapshotStopRequest{ID: id}

	resp, err := d.invoke(ctx, http.MethodPut, "/snapshot/stop", request)
	if err != nil {
		return err
	}
	return apiError(resp, "could not stop snapshot %s", id)
}

// DeleteSnapshot deletes a snapshot. Deleting a snapshot that is already gone
// succeeds.
func (d *Client) DeleteSnapshot(ctx context.Context, id string) error {
	resp, err := d.invoke(ctx, http.MethodDelete, "/snapshot/"+id, nil)
	if err != nil {
		return err
	}
	if resp.Error.Code == ErrorCodeSnapshotNotExist || resp.Error.Code == ErrorCodeObjectNotExist {
		Logc(ctx).WithField("id", id).Debug("Snapshot already deleted.")
		return nil
	}
	return apiError(resp, "could not delete snapshot %s", id)
}

// GetHostIDByName returns the ID of the named host. A name with no match
// returns "", not an error.
func (d *Client) GetHostIDByName(ctx context.Context, name string) (string, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/host"+nameFilter(name), nil)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not look up host %s", name); err != nil {
		return "", err
	}

	var hosts []Host
	if err = decodeData(resp, &hosts); err != nil {
		return "", err
	}
	if len(hosts) == 0 {
		return "", nil
	}
	return hosts[0].ID, nil
}

// CreateClonePair creates an unsynchronized clone pair between two LUNs and
// returns the pair ID.
func (d *Client) CreateClonePair(ctx context.Context, sourceID, targetID, copySpeed string) (string, error) {
	request := &ClonePairCreateRequest{
		SourceID:          sourceID,
		TargetID:          targetID,
		CopyRate:          copySpeed,
		IsNeedSynchronize: "0",
	}

	resp, err := d.invoke(ctx, http.MethodPost, "/clonepair/relation", request)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not create clone pair %s -> %s", sourceID, targetID); err != nil {
		return "", err
	}

	pair := new(ClonePair)
	if err = decodeData(resp, pair); err != nil {
		return "", err
	}
	return pair.ID, nil
}

// SyncClonePair starts copying a clone pair's source onto its target.
func (d *Client) SyncClonePair(ctx context.Context, pairID string) error {
	request := &ClonePairSyncRequest{ID: pairID, CopyAction: 0}

	resp, err := d.invoke(ctx, http.MethodPut, "/clonepair/synchronize", request)
	if err != nil {
		return err
	}
	return apiError(resp, "could not synchronize clone pair %s", pairID)
}

// GetClonePairInfo returns the clone pair with the given ID.
func (d *Client) GetClonePairInfo(ctx context.Context, pairID string) (*ClonePair, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/clonepair/"+pairID, nil)
	if err != nil {
		return nil, err
	}
	if resp.Error.Code == ErrorCodeObjectNotExist {
		return nil, errors.NotFoundError("clone pair %s not found", pairID)
	}
	if err = apiError(resp, "could not get clone pair %s", pairID); err != nil {
		return nil, err
	}

	pair := new(ClonePair)
	if err = decodeData(resp, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

// DeleteClonePair removes a clone pair relation, keeping the target LUN.
func (d *Client) DeleteClonePair(ctx context.Context, pairID string) error {
	request := &ClonePairDeleteRequest{ID: pairID, IsDeleteDstLun: false}

	resp, err := d.invoke(ctx, http.MethodDelete, "/clonepair/"+pairID, request)
	if err != nil {
		return err
	}
	if resp.Error.Code == ErrorCodeObjectNotExist {
		Logc(ctx).WithField("id", pairID).Debug("Clone pair already deleted.")
		return nil
	}
	return apiError(resp, "could not delete clone pair %s", pairID)
}

// CreateLunCopy creates a LUN copy session from a snapshot onto a target LUN
// and returns the session ID. The array exposes creation under "/luncopy" but
// control operations under "/LUNCOPY".
func (d *Client) CreateLunCopy(ctx context.Context, name, snapshotID, targetLunID, copySpeed string) (string, error) {
	request := &LunCopyCreateRequest{
		Type:        ObjectTypeLunCopy,
		Name:        name,
		Description: name,
		CopySpeed:   copySpeed,
		SourceLun:   fmt.Sprintf("INVALID;%s;INVALID;INVALID;INVALID", snapshotID),
		TargetLun:   fmt.Sprintf("INVALID;%s;INVALID;INVALID;INVALID", targetLunID),
	}

	resp, err := d.invoke(ctx, http.MethodPost, "/luncopy", request)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not create lun copy %s", name); err != nil {
		return "", err
	}

	lunCopy := new(LunCopy)
	if err = decodeData(resp, lunCopy); err != nil {
		return "", err
	}
	return lunCopy.ID, nil
}

// StartLunCopy starts a LUN copy session.
func (d *Client) StartLunCopy(ctx context.Context, id string) error {
	request := &LunCopyStartRequest{Type: ObjectTypeLunCopy, ID: id}

	resp, err := d.invoke(ctx, http.MethodPut, "/LUNCOPY/start", request)
	if err != nil {
		return err
	}
	return apiError(resp, "could not start lun copy %s", id)
}

// GetLunCopyInfo returns the LUN copy session with the given ID.
func (d *Client) GetLunCopyInfo(ctx context.Context, id string) (*LunCopy, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/LUNCOPY/"+id, nil)
	if err != nil {
		return nil, err
	}
	if resp.Error.Code == ErrorCodeObjectNotExist {
		return nil, errors.NotFoundError("lun copy %s not found", id)
	}
	if err = apiError(resp, "could not get lun copy %s", id); err != nil {
		return nil, err
	}

	lunCopy := new(LunCopy)
	if err = decodeData(resp, lunCopy); err != nil {
		return nil, err
	}
	return lunCopy, nil
}

// DeleteLunCopy deletes a LUN copy session. Deleting a session that is
// already gone succeeds.
func (d *Client) DeleteLunCopy(ctx context.Context, id string) error {
	resp, err := d.invoke(ctx, http.MethodDelete, "/LUNCOPY/"+id, nil)
	if err != nil {
		return err
	}
	if resp.Error.Code == ErrorCodeObjectNotExist {
		Logc(ctx).WithField("id", id).Debug("LUN copy already deleted.")
		return nil
	}
	return apiError(resp, "could not delete lun copy %s", id)
}

// GetWorkloadTypeID returns the ID of the named workload type, or "" if the
// array does not define it.
func (d *Client) GetWorkloadTypeID(ctx context.Context, name string) (string, error) {
	resp, err := d.invoke(ctx, http.MethodGet, "/workload_type"+nameFilter(name), nil)
	if err != nil {
		return "", err
	}
	if err = apiError(resp, "could not look up workload type %s", name); err != nil {
		return "", err
	}

	var workloadTypes []WorkloadType
	if err = decodeData(resp, &workloadTypes); err != nil {
		return "", err
	}

	for _, workloadType := range workloadTypes {
		if workloadType.Name == name {
			return workloadType.ID, nil
		}
	}
	return "", nil
}
