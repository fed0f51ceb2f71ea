package modelstore

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/redis.v5"

	"github.com/arborly/goboost/boost"
)

// ErrModelNotFound is returned by RedisStore.Load when no model is
// stored under the requested name.
var ErrModelNotFound = fmt.Errorf("modelstore: model not found")

// RedisStore persists whole ensembles in Redis, JSON-encoded, keyed
// by a configurable prefix plus model name.
type RedisStore struct {
	rc     *redis.Client
	prefix string
	codec  JSONCodec
}

// NewRedisStore wraps an already-connected *redis.Client. prefix is
// prepended to every model name to form the Redis key, e.g.
// "goboost:model:".
func NewRedisStore(rc *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rc: rc, prefix: prefix}
}

func (rs *RedisStore) keyFor(name string) string {
	return rs.prefix + name
}

// Save encodes ens and stores it under name, overwriting any model
// previously stored there.
func (rs *RedisStore) Save(name string, ens *boost.Ensemble) error {
	var buf bytes.Buffer
	if err := rs.codec.Encode(&buf, ens); err != nil {
		return err
	}
	_, err := rs.rc.Set(rs.keyFor(name), buf.String(), 0).Result()
	if err != nil {
		return fmt.Errorf("modelstore: storing model %q in redis: %v", name, err)
	}
	return nil
}

// Load retrieves and decodes the model stored under name. scoreLen is
// the number of training rows the caller wants the reconstructed
// ensemble's running-score scratch sized for (see JSONCodec.Decode).
func (rs *RedisStore) Load(name string, scoreLen int) (*boost.Ensemble, error) {
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err == redis.Nil {
		return nil, ErrModelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("modelstore: retrieving model %q from redis: %v", name, err)
	}
	return rs.codec.Decode(io.Reader(bytes.NewReader([]byte(data))), scoreLen)
}

// Delete removes the model stored under name, if any.
func (rs *RedisStore) Delete(name string) error {
	_, err := rs.rc.Del(rs.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("modelstore: deleting model %q from redis: %v", name, err)
	}
	return nil
}
