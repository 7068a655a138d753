// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package archive stores rendered switch configurations in redis hashes so
// that successive dumps may be compared.
package archive

import (
	"fmt"
	"time"

	redigo "github.com/garyburd/redigo/redis"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/log"
	uuid "github.com/satori/go.uuid"
)

const (
	DefaultKey = "rrcp.config"

	// DialAttempts bounds the connection retries of Dial.
	DialAttempts = 5
)

// Record is one dump as stored in the hash fields of the same name.
type Record struct {
	ID      string
	Switch  string
	Config  string
	Time    time.Time
	Dropped int
}

// NewRecord of a rendered configuration with a new random ID.
func NewRecord(switchName, config string, dropped int) Record {
	return Record{
		ID:      uuid.NewV4().String(),
		Switch:  switchName,
		Config:  config,
		Time:    time.Now().UTC(),
		Dropped: dropped,
	}
}

// Publish the record to the hash at key.
func Publish(conn redigo.Conn, key string, rec Record) error {
	if len(key) == 0 {
		key = DefaultKey
	}
	_, err := conn.Do("HSET", key,
		"config", rec.Config,
		"id", rec.ID,
		"switch", rec.Switch,
		"time", rec.Time.Format(time.RFC3339),
		"dropped", rec.Dropped)
	if err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

var dial = func(address string) (redigo.Conn, error) {
	return redigo.Dial("tcp", address)
}

var sleep = time.Sleep

// Dial the archive server, retrying with backoff.
func Dial(address string) (redigo.Conn, error) {
	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
		Jitter: false,
	}
	for attempt := 1; ; attempt++ {
		conn, err := dial(address)
		if err == nil {
			return conn, nil
		}
		if attempt >= DialAttempts {
			return nil, fmt.Errorf("archive %s: %w", address, err)
		}
		d := b.Duration()
		log.Print("warn", "archive ", address, ": ", err,
			"; retry in ", d)
		sleep(d)
	}
}
