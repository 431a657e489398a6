// Copyright 2023 Huawei Technologies Co., Ltd. All Rights Reserved.

package huawei

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockapi "github.com/doubletao318/OpenStack-Driver/mocks/mock_storage_drivers/mock_huawei"
	"github.com/doubletao318/OpenStack-Driver/storage"
	"github.com/doubletao318/OpenStack-Driver/storage_drivers/huawei/api"
	"github.com/doubletao318/OpenStack-Driver/utils/errors"
)

var ctx = context.Background()

func TestMain(m *testing.M) {
	// Discard all log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestEncodeName(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"21ec7341-9256-497b-97aa-d1be9a1f51f1", "21ec7341-e79e0e3634a0b089d7fb6b"},
		{"66d85a93-f1f9-4186-b3e0-1bb90a4058f3", "66d85a93-3f50720876cedf593b77ec"},
		{"ee81f62c-2d54-4a32-b701-d2b13ea9a5c8", "ee81f62c-9ac41e9b3a47f81b7c5f41"},
		{"0ed342b7", "0ed342b7-6bfc1133423ddbcaff1525"},
		{"abc", "abc-900150983cd24fb0d6963f7d28e"},
	}
	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			name := EncodeName(test.id)
			assert.Equal(t, test.expected, name)
			assert.Len(t, name, MaxNameLength)
			assert.True(t, strings.HasPrefix(name, strings.SplitN(test.id, "-", 2)[0]+"-"))
		})
	}

	// An empty ID still yields a well-formed name.
	assert.Equal(t, "-d41d8cd98f00b204e9800998ecf842", EncodeName(""))
}

func TestEncodeName_Stable(t *testing.T) {
	// The same ID always encodes to the same name, and different IDs with the
	// same leading segment do not collide.
	id1 := "21ec7341-9256-497b-97aa-d1be9a1f51f1"
	id2 := "21ec7341-0000-497b-97aa-d1be9a1f51f1"

	assert.Equal(t, EncodeName(id1), EncodeName(id1))
	assert.NotEqual(t, EncodeName(id1), EncodeName(id2))
}

func TestOldEncodeName(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"21ec7341-9256-497b-97aa-d1be9a1f51f1", "21ec7341-9143319216720388680"},
		{"ee81f62c-2d54-4a32-b701-d2b13ea9a5c8", "ee81f62c-6812075480983746331"},
		{"0ed342b7", "0ed342b7-8645223817429476075"},
		{"abc", "abc-1453079729188098211"},
	}
	for _, test := range tests {
		t.Run(test.id, func(t *testing.T) {
			assert.Equal(t, test.expected, OldEncodeName(test.id))
		})
	}

	// A negative hash provides the separator itself, so no second dash
	// appears. The hash of this ID is -3963626524841890834.
	assert.Equal(t, "66d85a93-3963626524841890834", OldEncodeName("66d85a93-f1f9-4186-b3e0-1bb90a4058f3"))

	assert.Equal(t, "-0", OldEncodeName(""))
}

func TestEncodeHostName(t *testing.T) {
	// Names within the limit are kept verbatim, even at exactly the limit.
	short := strings.Repeat("h", MaxNameLength)
	assert.Equal(t, "node1", EncodeHostName("node1"))
	assert.Equal(t, short, EncodeHostName(short))

	// Longer names collapse to a digest of the full name.
	long := "kubernetes-worker-storage-node-03.datacenter.example.com"
	encoded := EncodeHostName(long)
	assert.Equal(t, "7533a6afaeed775e84ac2ffd91df393", encoded)
	assert.Len(t, encoded, MaxNameLength)

	assert.Equal(t, "50532f69eed02d623ec20e8cff32875", EncodeHostName(strings.Repeat("h", MaxNameLength+1)))
}

func TestOldEncodeHostName(t *testing.T) {
	short := strings.Repeat("h", MaxNameLength)
	assert.Equal(t, "node1", OldEncodeHostName("node1"))
	assert.Equal(t, short, OldEncodeHostName(short))

	long := "kubernetes-worker-storage-node-03.datacenter.example.com"
	assert.Equal(t, "-2719993428830674542", OldEncodeHostName(long))

	assert.Equal(t, "-1550513646588079840", OldEncodeHostName(strings.Repeat("h", MaxNameLength+1)))
}

func TestLegacyStringHash(t *testing.T) {
	tests := []struct {
		s        string
		expected int64
	}{
		{"", 0},
		{"abc", 1453079729188098211},
		{"21ec7341-9256-497b-97aa-d1be9a1f51f1", 9143319216720388680},
		{"66d85a93-f1f9-4186-b3e0-1bb90a4058f3", -3963626524841890834},
		{"0ed342b7", -8645223817429476075},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, legacyStringHash(test.s))
	}
}

func TestGetVolumeMetadata(t *testing.T) {
	// The map form is used when present.
	volume := &storage.Volume{
		Metadata:       map[string]string{"huawei_sn": "2102350BSB10F3000001"},
		VolumeMetadata: []storage.MetadataEntry{{Key: "huawei_sn", Value: "ignored"}},
	}
	assert.Equal(t, map[string]string{"huawei_sn": "2102350BSB10F3000001"}, GetVolumeMetadata(volume))

	// Rows fold into a map, later rows overwriting earlier ones.
	volume = &storage.Volume{
		VolumeMetadata: []storage.MetadataEntry{
			{Key: "huawei_sn", Value: "old"},
			{Key: "hypermetro_id", Value: "3400"},
			{Key: "huawei_sn", Value: "2102350BSB10F3000001"},
		},
	}
	assert.Equal(t,
		map[string]string{"huawei_sn": "2102350BSB10F3000001", "hypermetro_id": "3400"},
		GetVolumeMetadata(volume))

	assert.Empty(t, GetVolumeMetadata(&storage.Volume{}))
}

func TestGetAdminMetadata(t *testing.T) {
	volume := &storage.Volume{
		ID:            "21ec7341-9256-497b-97aa-d1be9a1f51f1",
		AdminMetadata: map[string]string{"huawei_lun_wwn": "6643e8c1004c5f6723e9f454003"},
	}
	assert.Equal(t,
		map[string]string{"huawei_lun_wwn": "6643e8c1004c5f6723e9f454003"},
		GetAdminMetadata(ctx, volume))

	volume = &storage.Volume{
		VolumeAdminMetadata: []storage.MetadataEntry{{Key: "huawei_lun_wwn", Value: "6643e8c1004c5f6723e9f454003"}},
	}
	assert.Equal(t,
		map[string]string{"huawei_lun_wwn": "6643e8c1004c5f6723e9f454003"},
		GetAdminMetadata(ctx, volume))
}

func TestGetSnapshotUserMetadata(t *testing.T) {
	snapshot := &storage.Snapshot{
		Metadata: map[string]string{"huawei_snapshot_wwn": "6643e8c1004c5f6723e9f454003"},
	}
	assert.Equal(t,
		map[string]string{"huawei_snapshot_wwn": "6643e8c1004c5f6723e9f454003"},
		GetSnapshotUserMetadata(snapshot))

	snapshot = &storage.Snapshot{
		SnapshotMetadata: []storage.MetadataEntry{{Key: "huawei_snapshot_wwn", Value: "6643e8c1004c5f6723e9f454003"}},
	}
	assert.Equal(t,
		map[string]string{"huawei_snapshot_wwn": "6643e8c1004c5f6723e9f454003"},
		GetSnapshotUserMetadata(snapshot))
}

func TestGetLunMetadata(t *testing.T) {
	t.Run("NoLocation", func(t *testing.T) {
		metadata, err := GetLunMetadata(ctx, &storage.Volume{ID: "v1"})
		require.NoError(t, err)
		assert.Equal(t, &LunMetadata{}, metadata)
	})

	t.Run("CurrentFormat", func(t *testing.T) {
		volume := &storage.Volume{
			ID:               "v1",
			ProviderLocation: `{"huawei_lun_id":"11","huawei_lun_wwn":"6643e8c1004c5f6723e9f454003","huawei_sn":"2102350BSB10F3000001","hypermetro":true}`,
		}
		metadata, err := GetLunMetadata(ctx, volume)
		require.NoError(t, err)
		assert.Equal(t, &LunMetadata{
			LunID:      "11",
			LunWWN:     "6643e8c1004c5f6723e9f454003",
			SN:         "2102350BSB10F3000001",
			Hypermetro: true,
		}, metadata)
	})

	t.Run("LegacyNumericID", func(t *testing.T) {
		// Old releases stored the bare LUN ID, with everything else in the
		// volume's metadata.
		volume := &storage.Volume{
			ID:               "v1",
			ProviderLocation: `11`,
			Metadata:         map[string]string{"huawei_sn": "2102350BSB10F3000001", "hypermetro_id": "3400"},
			AdminMetadata:    map[string]string{"huawei_lun_wwn": "6643e8c1004c5f6723e9f454003"},
		}
		metadata, err := GetLunMetadata(ctx, volume)
		require.NoError(t, err)
		assert.Equal(t, &LunMetadata{
			LunID:      "11",
			LunWWN:     "6643e8c1004c5f6723e9f454003",
			SN:         "2102350BSB10F3000001",
			Hypermetro: true,
		}, metadata)
	})

	t.Run("LegacyStringID", func(t *testing.T) {
		volume := &storage.Volume{
			ID:               "v1",
			ProviderLocation: `"11"`,
		}
		metadata, err := GetLunMetadata(ctx, volume)
		require.NoError(t, err)
		assert.Equal(t, "11", metadata.LunID)
		assert.Empty(t, metadata.LunWWN)
		assert.False(t, metadata.Hypermetro)
	})

	t.Run("Undecodable", func(t *testing.T) {
		volume := &storage.Volume{
			ID:               "v1",
			ProviderLocation: `{"huawei_lun_id":`,
		}
		metadata, err := GetLunMetadata(ctx, volume)
		assert.Nil(t, metadata)
		assert.True(t, errors.IsInvalidJSONError(err))
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		volume := &storage.Volume{
			ID:               "v1",
			ProviderLocation: `{"huawei_lun_id":11}`,
		}
		metadata, err := GetLunMetadata(ctx, volume)
		assert.Nil(t, metadata)
		assert.True(t, errors.IsInvalidJSONError(err))
	})
}

func TestGetSnapshotMetadata(t *testing.T) {
	t.Run("NoLocation", func(t *testing.T) {
		metadata, err := GetSnapshotMetadata(ctx, &storage.Snapshot{ID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, &SnapshotMetadata{}, metadata)
	})

	t.Run("CurrentFormat", func(t *testing.T) {
		snapshot := &storage.Snapshot{
			ID:               "s1",
			ProviderLocation: `{"huawei_snapshot_id":"27","huawei_snapshot_wwn":"6643e8c1004c5f6723e9f454004"}`,
		}
		metadata, err := GetSnapshotMetadata(ctx, snapshot)
		require.NoError(t, err)
		assert.Equal(t, &SnapshotMetadata{
			SnapshotID:  "27",
			SnapshotWWN: "6643e8c1004c5f6723e9f454004",
		}, metadata)
	})

	t.Run("LegacyNumericID", func(t *testing.T) {
		snapshot := &storage.Snapshot{
			ID:               "s1",
			ProviderLocation: `27`,
			Metadata:         map[string]string{"huawei_snapshot_wwn": "6643e8c1004c5f6723e9f454004"},
		}
		metadata, err := GetSnapshotMetadata(ctx, snapshot)
		require.NoError(t, err)
		assert.Equal(t, &SnapshotMetadata{
			SnapshotID:  "27",
			SnapshotWWN: "6643e8c1004c5f6723e9f454004",
		}, metadata)
	})

	t.Run("Undecodable", func(t *testing.T) {
		snapshot := &storage.Snapshot{
			ID:               "s1",
			ProviderLocation: `{"huawei_snapshot_id"`,
		}
		metadata, err := GetSnapshotMetadata(ctx, snapshot)
		assert.Nil(t, metadata)
		assert.True(t, errors.IsInvalidJSONError(err))
	})
}

func TestLunMetadata_Location(t *testing.T) {
	// The record written at creation time is readable on the way back.
	metadata := &LunMetadata{
		LunID:      "11",
		LunWWN:     "6643e8c1004c5f6723e9f454003",
		SN:         "2102350BSB10F3000001",
		Hypermetro: false,
	}

	volume := &storage.Volume{ID: "v1", ProviderLocation: metadata.Location()}
	decoded, err := GetLunMetadata(ctx, volume)
	require.NoError(t, err)
	assert.Equal(t, metadata, decoded)
}

func TestSnapshotMetadata_Location(t *testing.T) {
	metadata := &SnapshotMetadata{SnapshotID: "27"}

	snapshot := &storage.Snapshot{ID: "s1", ProviderLocation: metadata.Location()}
	decoded, err := GetSnapshotMetadata(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, metadata, decoded)
}

func TestGetVolumeLunID(t *testing.T) {
	volumeID := "21ec7341-9256-497b-97aa-d1be9a1f51f1"

	t.Run("FoundUnderCurrentName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{
			ID:               volumeID,
			ProviderLocation: `{"huawei_lun_id":"11","huawei_lun_wwn":"6643e8c1004c5f6723e9f454003"}`,
		}

		// The legacy name is never tried once the current name matches.
		mockAPI.EXPECT().GetLunIDByName(ctx, EncodeName(volumeID)).Return("11", nil)

		lunID, lunWWN, err := GetVolumeLunID(ctx, mockAPI, volume)
		require.NoError(t, err)
		assert.Equal(t, "11", lunID)
		assert.Equal(t, "6643e8c1004c5f6723e9f454003", lunWWN)
	})

	t.Run("FoundUnderLegacyName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{ID: volumeID}

		mockAPI.EXPECT().GetLunIDByName(ctx, EncodeName(volumeID)).Return("", nil)
		mockAPI.EXPECT().GetLunIDByName(ctx, OldEncodeName(volumeID)).Return("55", nil)

		lunID, lunWWN, err := GetVolumeLunID(ctx, mockAPI, volume)
		require.NoError(t, err)
		assert.Equal(t, "55", lunID)
		assert.Empty(t, lunWWN)
	})

	t.Run("FoundInMetadata", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{
			ID:               volumeID,
			ProviderLocation: `{"huawei_lun_id":"99"}`,
		}

		mockAPI.EXPECT().GetLunIDByName(ctx, EncodeName(volumeID)).Return("", nil)
		mockAPI.EXPECT().GetLunIDByName(ctx, OldEncodeName(volumeID)).Return("", nil)

		lunID, _, err := GetVolumeLunID(ctx, mockAPI, volume)
		require.NoError(t, err)
		assert.Equal(t, "99", lunID)
	})

	t.Run("NotFoundAnywhere", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{ID: volumeID}

		mockAPI.EXPECT().GetLunIDByName(ctx, EncodeName(volumeID)).Return("", nil)
		mockAPI.EXPECT().GetLunIDByName(ctx, OldEncodeName(volumeID)).Return("", nil)

		// Absence is not an error.
		lunID, lunWWN, err := GetVolumeLunID(ctx, mockAPI, volume)
		require.NoError(t, err)
		assert.Empty(t, lunID)
		assert.Empty(t, lunWWN)
	})

	t.Run("LookupError", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{ID: volumeID}

		mockAPI.EXPECT().GetLunIDByName(ctx, EncodeName(volumeID)).
			Return("", errors.BackendAPIError("connection refused"))

		_, _, err := GetVolumeLunID(ctx, mockAPI, volume)
		assert.Error(t, err)
	})

	t.Run("BadMetadata", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		volume := &storage.Volume{ID: volumeID, ProviderLocation: `{"huawei_lun_id":`}

		// The record is rejected before the array is consulted.
		_, _, err := GetVolumeLunID(ctx, mockAPI, volume)
		assert.True(t, errors.IsInvalidJSONError(err))
	})
}

func TestGetSnapshotID(t *testing.T) {
	snapshotID := "ee81f62c-2d54-4a32-b701-d2b13ea9a5c8"

	t.Run("FoundUnderCurrentName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		snapshot := &storage.Snapshot{
			ID:               snapshotID,
			ProviderLocation: `{"huawei_snapshot_id":"27","huawei_snapshot_wwn":"6643e8c1004c5f6723e9f454004"}`,
		}

		mockAPI.EXPECT().GetSnapshotIDByName(ctx, EncodeName(snapshotID)).Return("27", nil)

		id, wwn, err := GetSnapshotID(ctx, mockAPI, snapshot)
		require.NoError(t, err)
		assert.Equal(t, "27", id)
		assert.Equal(t, "6643e8c1004c5f6723e9f454004", wwn)
	})

	t.Run("FoundUnderLegacyName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		snapshot := &storage.Snapshot{ID: snapshotID}

		mockAPI.EXPECT().GetSnapshotIDByName(ctx, EncodeName(snapshotID)).Return("", nil)
		mockAPI.EXPECT().GetSnapshotIDByName(ctx, OldEncodeName(snapshotID)).Return("31", nil)

		id, _, err := GetSnapshotID(ctx, mockAPI, snapshot)
		require.NoError(t, err)
		assert.Equal(t, "31", id)
	})

	t.Run("FoundInMetadata", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		snapshot := &storage.Snapshot{ID: snapshotID, ProviderLocation: `27`}

		mockAPI.EXPECT().GetSnapshotIDByName(ctx, EncodeName(snapshotID)).Return("", nil)
		mockAPI.EXPECT().GetSnapshotIDByName(ctx, OldEncodeName(snapshotID)).Return("", nil)

		id, _, err := GetSnapshotID(ctx, mockAPI, snapshot)
		require.NoError(t, err)
		assert.Equal(t, "27", id)
	})

	t.Run("NotFoundAnywhere", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		snapshot := &storage.Snapshot{ID: snapshotID}

		mockAPI.EXPECT().GetSnapshotIDByName(ctx, EncodeName(snapshotID)).Return("", nil)
		mockAPI.EXPECT().GetSnapshotIDByName(ctx, OldEncodeName(snapshotID)).Return("", nil)

		id, wwn, err := GetSnapshotID(ctx, mockAPI, snapshot)
		require.NoError(t, err)
		assert.Empty(t, id)
		assert.Empty(t, wwn)
	})
}

func TestGetHostID(t *testing.T) {
	t.Run("ShortName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		mockAPI.EXPECT().GetHostIDByName(ctx, "node1").Return("7", nil)

		hostID, err := GetHostID(ctx, mockAPI, "node1")
		require.NoError(t, err)
		assert.Equal(t, "7", hostID)
	})

	t.Run("ShortNameMiss", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		// Short names are stored verbatim, so a miss is final and the legacy
		// encoding is never tried.
		mockAPI.EXPECT().GetHostIDByName(ctx, "node1").Return("", nil)

		hostID, err := GetHostID(ctx, mockAPI, "node1")
		require.NoError(t, err)
		assert.Empty(t, hostID)
	})

	t.Run("LongName", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		long := "kubernetes-worker-storage-node-03.datacenter.example.com"
		mockAPI.EXPECT().GetHostIDByName(ctx, "7533a6afaeed775e84ac2ffd91df393").Return("7", nil)

		hostID, err := GetHostID(ctx, mockAPI, long)
		require.NoError(t, err)
		assert.Equal(t, "7", hostID)
	})

	t.Run("LongNameLegacyFallback", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		long := "kubernetes-worker-storage-node-03.datacenter.example.com"
		mockAPI.EXPECT().GetHostIDByName(ctx, "7533a6afaeed775e84ac2ffd91df393").Return("", nil)
		mockAPI.EXPECT().GetHostIDByName(ctx, "-2719993428830674542").Return("9", nil)

		hostID, err := GetHostID(ctx, mockAPI, long)
		require.NoError(t, err)
		assert.Equal(t, "9", hostID)
	})

	t.Run("LookupError", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		mockAPI.EXPECT().GetHostIDByName(ctx, "node1").
			Return("", errors.BackendAPIError("connection refused"))

		_, err := GetHostID(ctx, mockAPI, "node1")
		assert.Error(t, err)
	})
}

func alwaysFalse() (bool, error) {
	return false, nil
}

func TestWaitForCondition(t *testing.T) {
	t.Run("Succeeds", func(t *testing.T) {
		attempts := 0
		check := func() (bool, error) {
			attempts++
			return attempts >= 3, nil
		}

		err := WaitForCondition(ctx, check, 5*time.Millisecond, 5*time.Second)
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Timeout", func(t *testing.T) {
		err := WaitForCondition(ctx, alwaysFalse, 10*time.Millisecond, 25*time.Millisecond)
		require.Error(t, err)
		assert.True(t, errors.IsBackendAPIError(err))
		// The failed condition is named in the error.
		assert.Contains(t, err.Error(), "alwaysFalse")
	})

	t.Run("CheckFails", func(t *testing.T) {
		attempts := 0
		check := func() (bool, error) {
			attempts++
			return false, errors.New("simulated backend failure")
		}

		err := WaitForCondition(ctx, check, 10*time.Millisecond, 5*time.Second)
		require.Error(t, err)
		assert.True(t, errors.IsBackendAPIError(err))
		assert.Contains(t, err.Error(), "simulated backend failure")
		// A failing check ends the poll without further attempts.
		assert.Equal(t, 1, attempts)
	})

	t.Run("ContextCanceled", func(t *testing.T) {
		pollCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()

		err := WaitForCondition(pollCtx, alwaysFalse, 10*time.Millisecond, 5*time.Second)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, errors.IsBackendAPIError(err))
	})
}

func TestCheckFeatureAvailable(t *testing.T) {
	featureStatus := map[string]int{
		"SmartQoS":              1,
		"SmartThin":             2,
		"HyperCopy":             0,
		"HyperReplication":      3,
		"SmartDedupe (for LUN)": 1,
	}

	assert.True(t, CheckFeatureAvailable(featureStatus, []string{"SmartQoS"}))
	assert.True(t, CheckFeatureAvailable(featureStatus, []string{"SmartThin"}))
	assert.False(t, CheckFeatureAvailable(featureStatus, []string{"HyperCopy"}))
	assert.False(t, CheckFeatureAvailable(featureStatus, []string{"HyperReplication"}))
	assert.False(t, CheckFeatureAvailable(featureStatus, []string{"HyperMetro"}))

	// Any usable name in the list is enough.
	assert.True(t, CheckFeatureAvailable(featureStatus, []string{"SmartDedupe", "SmartDedupe (for LUN)"}))

	assert.False(t, CheckFeatureAvailable(featureStatus, nil))
}

func TestIsSupportClonePair(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
	}{
		{"V500R007C60", false},
		{"V600R003C00", true},
		{"V600R005C21", true},
	}
	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

			mockAPI.EXPECT().GetArrayInfo(ctx).Return(&api.ArrayInfo{ProductVersion: test.version}, nil)

			supported, err := IsSupportClonePair(ctx, mockAPI)
			require.NoError(t, err)
			assert.Equal(t, test.expected, supported)
		})
	}

	t.Run("Error", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		mockAPI := mockapi.NewMockOceanStorAPI(mockCtrl)

		mockAPI.EXPECT().GetArrayInfo(ctx).Return(nil, errors.BackendAPIError("connection refused"))

		_, err := IsSupportClonePair(ctx, mockAPI)
		assert.Error(t, err)
	})
}

func TestGetVolumeSize(t *testing.T) {
	assert.Equal(t, int64(10*CapacityUnit), GetVolumeSize(&storage.Volume{Size: 10}))

	// A volume with no size gets the 1 GiB floor.
	assert.Equal(t, int64(CapacityUnit), GetVolumeSize(&storage.Volume{}))
}

func TestParseVolumeOpts(t *testing.T) {
	t.Run("AllSpecs", func(t *testing.T) {
		specs := map[string]string{
			specDedup:           "<is> true",
			specCompression:     "<is> False",
			specHypermetro:      "<is> true",
			specSmartTierPolicy: "3",
			specApplicationType: "true",
			specApplicationName: "Oracle_OLTP",
		}

		opts, err := ParseVolumeOpts(specs)
		require.NoError(t, err)
		require.NotNil(t, opts.Dedup)
		assert.True(t, *opts.Dedup)
		require.NotNil(t, opts.Compression)
		assert.False(t, *opts.Compression)
		assert.True(t, opts.Hypermetro)
		assert.False(t, opts.ReplicationEnabled)
		assert.Equal(t, "3", opts.Policy)
		assert.True(t, opts.ApplicationType)
		assert.Equal(t, "Oracle_OLTP", opts.ApplicationName)
	})

	t.Run("Defaults", func(t *testing.T) {
		opts, err := ParseVolumeOpts(nil)
		require.NoError(t, err)

		// Unspecified dedup and compression stay nil so the array defaults
		// apply.
		assert.Nil(t, opts.Dedup)
		assert.Nil(t, opts.Compression)
		assert.False(t, opts.Hypermetro)
	})

	t.Run("UnknownSpecsIgnored", func(t *testing.T) {
		opts, err := ParseVolumeOpts(map[string]string{"volume_backend_name": "oceanstor-1"})
		require.NoError(t, err)
		assert.Nil(t, opts.Dedup)
	})

	t.Run("InvalidBoolean", func(t *testing.T) {
		opts, err := ParseVolumeOpts(map[string]string{specDedup: "maybe"})
		assert.Nil(t, opts)
		assert.True(t, errors.IsInvalidInputError(err))
	})

	t.Run("Replication", func(t *testing.T) {
		opts, err := ParseVolumeOpts(map[string]string{specReplication: "<is> true"})
		require.NoError(t, err)
		assert.True(t, opts.ReplicationEnabled)
	})
}

func TestResolveApplicationType(t *testing.T) {
	opts := &VolumeOpts{ApplicationType: true, ApplicationName: "Oracle_OLTP"}
	require.NoError(t, opts.ResolveApplicationType())
	assert.Equal(t, "Oracle_OLTP", opts.ApplicationName)

	opts = &VolumeOpts{ApplicationType: true}
	err := opts.ResolveApplicationType()
	assert.True(t, errors.IsInvalidInputError(err))
	assert.Contains(t, err.Error(), specApplicationType)

	// Disabling the type discards any stale name.
	opts = &VolumeOpts{ApplicationType: false, ApplicationName: "stale"}
	require.NoError(t, opts.ResolveApplicationType())
	assert.Empty(t, opts.ApplicationName)
}
