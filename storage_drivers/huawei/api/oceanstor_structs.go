// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package api

import "encoding/json"

// Error codes returned in the response envelope.
const (
	ErrorCodeSuccess          int64 = 0
	ErrorCodeUnauthorized     int64 = -401
	ErrorCodeConnectionFault  int64 = -403
	ErrorCodeLunNotExist      int64 = 1077936859
	ErrorCodeSnapshotNotExist int64 = 1077937880
	ErrorCodeObjectNotExist   int64 = 1077948996
)

// Object type codes used in request payloads.
const (
	ObjectTypeLun     = 11
	ObjectTypeLunCopy = 219
)

// LUN allocation types.
const (
	AllocTypeThick = 0
	AllocTypeThin  = 1
)

// Account states reported at login time for which the session must not be
// used until the password is changed on the array.
var passwordExpiredOrInitial = map[int]bool{3: true, 4: true}

type ResponseError struct {
	Code        int64  `json:"code"`
	Description string `json:"description"`
}

// Response is the envelope wrapped around every REST reply. Data holds an
// object for single-entity requests and an array for filter queries, so it
// stays raw until the caller knows which one to expect.
type Response struct {
	Error ResponseError   `json:"error"`
	Data  json.RawMessage `json:"data"`
}

type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Scope      string `json:"scope"`
	VStoreName string `json:"vstorename,omitempty"`
}

type LoginData struct {
	DeviceID     string `json:"deviceid"`
	IBaseToken   string `json:"iBaseToken"`
	AccountState int    `json:"accountstate"`
}

type ArrayInfo struct {
	ID             string `json:"ID"`
	Name           string `json:"NAME"`
	ProductMode    string `json:"PRODUCTMODE"`
	ProductVersion string `json:"PRODUCTVERSION"`
	WWN            string `json:"wwn"`
}

type StoragePool struct {
	ID                string `json:"ID"`
	Name              string `json:"NAME"`
	ParentName        string `json:"PARENTNAME"`
	RunningStatus     string `json:"RUNNINGSTATUS"`
	UsageType         string `json:"USAGETYPE"` // "1" block, "2" file
	UserFreeCapacity  string `json:"USERFREECAPACITY"`
	UserTotalCapacity string `json:"USERTOTALCAPACITY"`
}

type Lun struct {
	ID             string `json:"ID"`
	Name           string `json:"NAME"`
	ParentID       string `json:"PARENTID"`
	HealthStatus   string `json:"HEALTHSTATUS"`
	RunningStatus  string `json:"RUNNINGSTATUS"`
	Capacity       string `json:"CAPACITY"` // 512-byte sectors, reported as a string
	AllocType      string `json:"ALLOCTYPE"`
	WWN            string `json:"WWN"`
	WorkloadTypeID string `json:"WORKLOADTYPEID"`
	Description    string `json:"DESCRIPTION"`
}

type LunCreateRequest struct {
	Name           string `json:"NAME"`
	ParentID       string `json:"PARENTID"`
	Capacity       int64  `json:"CAPACITY"`
	AllocType      int    `json:"ALLOCTYPE"`
	WorkloadTypeID string `json:"WORKLOADTYPEID,omitempty"`
	Description    string `json:"DESCRIPTION,omitempty"`
}

type LunExtendRequest struct {
	Type     int    `json:"TYPE"`
	ID       string `json:"ID"`
	Capacity int64  `json:"CAPACITY"`
}

type Snapshot struct {
	ID            string `json:"ID"`
	Name          string `json:"NAME"`
	ParentID      string `json:"PARENTID"`
	HealthStatus  string `json:"HEALTHSTATUS"`
	RunningStatus string `json:"RUNNINGSTATUS"`
	UserCapacity  string `json:"USERCAPACITY"`
	WWN           string `json:"WWN"`
}

type SnapshotCreateRequest struct {
	Name        string `json:"NAME"`
	ParentID    string `json:"PARENTID"`
	ParentType  int    `json:"PARENTTYPE"`
	Description string `json:"DESCRIPTION,omitempty"`
}

type SnapshotActivateRequest struct {
	SnapshotList []string `json:"SNAPSHOTLIST"`
}

type SnapshotStopRequest struct {
	ID string `json:"ID"`
}

// ClonePair uses the newer API generation, which returns camel-cased keys
// instead of the upper-cased ones used everywhere else.
type ClonePair struct {
	ID         string `json:"ID"`
	CopyStatus string `json:"copyStatus"`
	SyncStatus string `json:"syncStatus"`
	Progress   string `json:"progress"`
}

type ClonePairCreateRequest struct {
	SourceID          string `json:"sourceID"`
	TargetID          string `json:"targetID"`
	CopyRate          string `json:"copyRate"`
	IsNeedSynchronize string `json:"isNeedSynchronize"`
}

type ClonePairSyncRequest struct {
	ID         string `json:"ID"`
	CopyAction int    `json:"copyAction"`
}

type ClonePairDeleteRequest struct {
	ID             string `json:"ID"`
	IsDeleteDstLun bool   `json:"isDeleteDstLun"`
}

type LunCopy struct {
	ID            string `json:"ID"`
	Name          string `json:"NAME"`
	HealthStatus  string `json:"HEALTHSTATUS"`
	RunningStatus string `json:"RUNNINGSTATUS"`
	CopyProgress  string `json:"COPYPROGRESS"`
}

type LunCopyCreateRequest struct {
	Type        int    `json:"TYPE"`
	Name        string `json:"NAME"`
	Description string `json:"DESCRIPTION"`
	CopySpeed   string `json:"COPYSPEED"`
	SourceLun   string `json:"SOURCELUN"`
	TargetLun   string `json:"TARGETLUN"`
}

type LunCopyStartRequest struct {
	Type int    `json:"TYPE"`
	ID   string `json:"ID"`
}

type Host struct {
	ID     string `json:"ID"`
	Name   string `json:"NAME"`
	OSType string `json:"OPERATIONSYSTEM"`
}

type WorkloadType struct {
	ID   string `json:"ID"`
	Name string `json:"NAME"`
}
