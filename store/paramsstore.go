package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcwallet/walletdb"
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/babylonchain/btc-staking-manager/params"
	"github.com/babylonchain/btc-staking-manager/types"
)

var (
	// version -> params in the Babylon JSON shape
	paramsBucketName = []byte("stakingparams")
)

// ParamsStore persists versioned staking params so that a registry can be
// rebuilt without querying Babylon.
type ParamsStore struct {
	db kvdb.Backend
}

func NewParamsStore(db kvdb.Backend) (*ParamsStore, error) {
	s := &ParamsStore{db}
	if err := s.initBuckets(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *ParamsStore) initBuckets() error {
	return kvdb.Batch(s.db, func(tx kvdb.RwTx) error {
		_, err := tx.CreateTopLevelBucket(paramsBucketName)
		return err
	})
}

// PutParams stores the given params. Storing the same version again is a
// no-op when the content is identical and fails otherwise, as a params
// version never changes once activated.
func (s *ParamsStore) PutParams(p *types.VersionedStakingParams) error {
	if err := p.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params.FromParams(p))
	if err != nil {
		return fmt.Errorf("failed to marshal params version %d: %w", p.Version, err)
	}

	return kvdb.Batch(s.db, func(tx kvdb.RwTx) error {
		bucket := tx.ReadWriteBucket(paramsBucketName)
		if bucket == nil {
			return ErrCorruptedParamsDb
		}

		key := versionKey(p.Version)
		if existing := bucket.Get(key); existing != nil {
			if bytes.Equal(existing, bz) {
				return nil
			}
			return fmt.Errorf("%w: version %d", ErrConflictingParams, p.Version)
		}

		return bucket.Put(key, bz)
	})
}

func (s *ParamsStore) GetParams(version uint32) (*types.VersionedStakingParams, error) {
	var p *types.VersionedStakingParams
	err := s.db.View(func(tx kvdb.RTx) error {
		bucket := tx.ReadBucket(paramsBucketName)
		if bucket == nil {
			return ErrCorruptedParamsDb
		}

		v := bucket.Get(versionKey(version))
		if v == nil {
			return ErrParamsNotFound
		}

		var err error
		p, err = decodeParams(v)
		return err
	}, func() {})

	if err != nil {
		return nil, err
	}

	return p, nil
}

// ListParams returns all stored params ordered by version.
func (s *ParamsStore) ListParams() ([]*types.VersionedStakingParams, error) {
	var res []*types.VersionedStakingParams
	err := s.db.View(func(tx kvdb.RTx) error {
		bucket := tx.ReadBucket(paramsBucketName)
		if bucket == nil {
			return ErrCorruptedParamsDb
		}

		return bucket.ForEach(func(_, v []byte) error {
			p, err := decodeParams(v)
			if err != nil {
				return err
			}
			res = append(res, p)
			return nil
		})
	}, func() {
		res = nil
	})

	if err != nil {
		return nil, err
	}

	return res, nil
}

// Registry builds a params registry from the stored params.
func (s *ParamsStore) Registry() (*params.Registry, error) {
	all, err := s.ListParams()
	if err != nil {
		return nil, err
	}
	return params.NewRegistry(all)
}

func (s *ParamsStore) DeleteParams(version uint32) error {
	return kvdb.Batch(s.db, func(tx kvdb.RwTx) error {
		bucket := tx.ReadWriteBucket(paramsBucketName)
		if bucket == nil {
			return ErrCorruptedParamsDb
		}
		return deleteParams(bucket, version)
	})
}

func deleteParams(bucket walletdb.ReadWriteBucket, version uint32) error {
	key := versionKey(version)
	if bucket.Get(key) == nil {
		return ErrParamsNotFound
	}
	return bucket.Delete(key)
}

func (s *ParamsStore) Close() error {
	return s.db.Close()
}

func decodeParams(v []byte) (*types.VersionedStakingParams, error) {
	var pj params.ParamsJSON
	if err := json.Unmarshal(v, &pj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedParamsDb, err)
	}
	return pj.ToParams()
}

// big-endian keys keep the bucket ordered by version
func versionKey(version uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, version)
	return key
}
