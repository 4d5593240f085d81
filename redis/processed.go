package redis

import (
	"fmt"
	"log"

	"gobridgerouter/types"

	"github.com/gomodule/redigo/redis"
)

// ProcessedStore keeps the transfer processed-set in Redis. SETNX
// makes check-and-mark atomic across concurrent submitters and across
// process restarts; keys are never deleted.
type ProcessedStore struct{}

func NewProcessedStore() *ProcessedStore {
	return &ProcessedStore{}
}

func processedKey(id types.TransferId) string {
	return fmt.Sprintf("processed:%s", id.Hex())
}

func (s *ProcessedStore) CheckAndMark(id types.TransferId) (bool, error) {
	conn, err := getConn()
	if err != nil {
		return false, err
	}
	defer conn.Close()

	set, err := redis.Int(conn.Do("SETNX", processedKey(id), 1))
	if err != nil {
		log.Printf("error Redis SETNX: %s", err.Error())
		return false, err
	}
	return set == 1, nil
}

func (s *ProcessedStore) IsProcessed(id types.TransferId) (bool, error) {
	conn, err := getConn()
	if err != nil {
		return false, err
	}
	defer conn.Close()

	exists, err := redis.Int(conn.Do("EXISTS", processedKey(id)))
	if err != nil {
		log.Printf("error Redis EXISTS: %s", err.Error())
		return false, err
	}
	return exists == 1, nil
}
