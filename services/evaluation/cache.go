package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"branchaudit/services/aggregate"

	"github.com/go-redis/redis/v8"
)

const (
	reportKeyPrefix = "report:branch:"
	reportIndexKey  = "report:index:"
)

// ReportCache stores computed branch reports. Misses return (nil, nil).
type ReportCache interface {
	Get(ctx context.Context, branch, from, to string) (*aggregate.BranchReport, error)
	Set(ctx context.Context, report *aggregate.BranchReport) error
	InvalidateBranch(ctx context.Context, branch string) error
}

// RedisReportCache keeps reports as JSON blobs with a TTL.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

// Branch names are matched exactly (after trimming), the same way the
// repository filters them.
func reportKey(branch, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s", reportKeyPrefix, strings.TrimSpace(branch), from, to)
}

func indexKey(branch string) string {
	return reportIndexKey + strings.TrimSpace(branch)
}

func (c *RedisReportCache) Get(ctx context.Context, branch, from, to string) (*aggregate.BranchReport, error) {
	data, err := c.client.Get(ctx, reportKey(branch, from, to)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report aggregate.BranchReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Set stores the report and records its key in the branch index set.
func (c *RedisReportCache) Set(ctx context.Context, report *aggregate.BranchReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	key := reportKey(report.Branch, report.From, report.To)
	index := indexKey(report.Branch)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, c.ttl)
		pipe.SAdd(ctx, index, key)
		if c.ttl > 0 {
			pipe.Expire(ctx, index, c.ttl)
		}
		return nil
	})
	return err
}

// InvalidateBranch drops every cached range for branch.
func (c *RedisReportCache) InvalidateBranch(ctx context.Context, branch string) error {
	index := indexKey(branch)
	keys, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	members := make([]interface{}, len(keys))
	for i, k := range keys {
		members[i] = k
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.SRem(ctx, index, members...)
		return nil
	})
	return err
}

type NopReportCache struct{}

func (NopReportCache) Get(context.Context, string, string, string) (*aggregate.BranchReport, error) {
	return nil, nil
}
func (NopReportCache) Set(context.Context, *aggregate.BranchReport) error { return nil }
func (NopReportCache) InvalidateBranch(context.Context, string) error     { return nil }
