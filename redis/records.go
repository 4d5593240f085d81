package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gobridgerouter/config"
	"gobridgerouter/types"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
)

// RecordStore keeps transfer records key-per-record with one Redis set
// per status for enumeration.
type RecordStore struct{}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func recordKey(status, id string) string {
	return fmt.Sprintf("routerop:%s:%s", status, id)
}

func (s *RecordStore) Save(rec *types.TransferRecord) error {
	conn, err := getConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	if rec == nil {
		return errors.New("null object to store")
	}
	if rec.Status == "" {
		return errors.New("transfer record cannot have empty status")
	}
	if _, ok := config.RedisStatusSets[rec.Status]; !ok {
		return errors.New("redis key not found for status")
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	key := recordKey(rec.Status, rec.ID)

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cannot marshal transfer record to JSON: %s", err.Error())
	}

	_, err = conn.Do("SET", key, recJSON)
	if err != nil {
		log.Printf("error Redis SET: %s", err.Error())
		return err
	}

	// also add the key to the corresponding SET
	_, err = conn.Do("SADD", config.RedisStatusSets[rec.Status], key)
	if err != nil {
		log.Printf("error Redis SADD: %s", err.Error())
		return err
	}

	return nil
}

func (s *RecordStore) FindByTransferId(transferId string) (*types.TransferRecord, error) {
	for status := range config.RedisStatusSets {
		rec, err := s.findByStatus(status, func(r *types.TransferRecord) bool {
			return r.TransferId == transferId
		})
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *RecordStore) FindAllByStatus(status string) ([]*types.TransferRecord, error) {
	if _, ok := config.RedisStatusSets[status]; !ok {
		return nil, errors.New("redis key not found for status")
	}

	recs := make([]*types.TransferRecord, 0)
	_, err := s.scanStatus(status, func(r *types.TransferRecord) bool {
		recs = append(recs, r)
		return false
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *RecordStore) findByStatus(status string, match func(*types.TransferRecord) bool) (*types.TransferRecord, error) {
	return s.scanStatus(status, match)
}

// scanStatus walks every record in a status set; match returning true
// stops the scan and yields that record. Older records should be
// archived elsewhere or scans will degrade (still O(n)).
func (s *RecordStore) scanStatus(status string, match func(*types.TransferRecord) bool) (*types.TransferRecord, error) {
	conn, err := getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var cursor int64
	for {
		values, err := redis.Values(conn.Do("SSCAN", config.RedisStatusSets[status], cursor))
		if err != nil {
			return nil, err
		}

		var keys []string
		values, err = redis.Scan(values, &cursor, &keys)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			raw, err := redis.Bytes(conn.Do("GET", key))
			if errors.Is(err, redis.ErrNil) {
				// record expired or removed out of band, skip
				continue
			}
			if err != nil {
				log.Printf("error Redis GET: %s", err.Error())
				return nil, err
			}

			var rec types.TransferRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, err
			}
			if match(&rec) {
				return &rec, nil
			}
		}

		if cursor == 0 {
			break
		}
	}

	return nil, nil
}
