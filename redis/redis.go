package redis

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gobridgerouter/config"

	"github.com/gomodule/redigo/redis"
)

var pool *redis.Pool

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

func Init() {
	redisAddr := fmt.Sprintf("%s:%d", config.Config.Server.RedisHost, config.Config.Server.RedisPort)
	pool = &redis.Pool{
		MaxIdle: 5,
		Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
	}
}

// Ping checks the connection; without persistence the server should
// not continue.
func Ping() error {
	conn := pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	if err != nil {
		log.Printf("error Redis PING: %s", err.Error())
	}
	return err
}

var errNotInitialized = errors.New("redis pool not initialized")

func getConn() (redis.Conn, error) {
	if pool == nil {
		return nil, errNotInitialized
	}
	return pool.Get(), nil
}
