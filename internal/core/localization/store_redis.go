// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/aqar/internal/platform/constants"
)

// RedisRepository implements [Repository] as an append-only Redis list.
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository creates a Redis-backed [Repository].
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, key: constants.RedisKeyDictionaryAdditions}
}

/*
AppendEntry pushes an entry to the tail of the additions list.

Parameters:
  - context: context.Context
  - entry: Entry

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisRepository) AppendEntry(context context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("redis_dictionary_encode_failed: %w", err)
	}

	if err := repository.client.RPush(context, repository.key, payload).Err(); err != nil {
		return fmt.Errorf("redis_dictionary_append_failed: %w", err)
	}

	return nil
}

/*
ListEntries returns every stored addition, oldest first.

Returns:
  - []Entry: Additions in append order
  - error: Decoding or connectivity errors
*/
func (repository *RedisRepository) ListEntries(context context.Context) ([]Entry, error) {
	payloads, err := repository.client.LRange(context, repository.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_dictionary_list_failed: %w", err)
	}

	entries := make([]Entry, 0, len(payloads))
	for _, payload := range payloads {
		var entry Entry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			return nil, fmt.Errorf("redis_dictionary_decode_failed: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
