// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/coach/internal/analytics/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

const (
	userExpiration  = 2 * time.Minute
	adminExpiration = 5 * time.Minute
)

type AnalyticsECache struct {
	ec ecache.Cache
}

func NewAnalyticsECache(ec ecache.Cache) AnalyticsCache {
	return &AnalyticsECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "analytics:",
		},
	}
}

func (c *AnalyticsECache) GetOverview(ctx context.Context, uid int64) (domain.Overview, error) {
	var res domain.Overview
	err := c.get(ctx, c.overviewKey(uid), &res)
	return res, err
}

func (c *AnalyticsECache) SetOverview(ctx context.Context, uid int64, o domain.Overview) error {
	return c.set(ctx, c.overviewKey(uid), o, userExpiration)
}

func (c *AnalyticsECache) GetPerformance(ctx context.Context, uid int64) ([]domain.PerformancePoint, error) {
	var res []domain.PerformancePoint
	err := c.get(ctx, c.performanceKey(uid), &res)
	return res, err
}

func (c *AnalyticsECache) SetPerformance(ctx context.Context, uid int64, points []domain.PerformancePoint) error {
	return c.set(ctx, c.performanceKey(uid), points, userExpiration)
}

func (c *AnalyticsECache) GetAdminStats(ctx context.Context) (domain.AdminStats, error) {
	var res domain.AdminStats
	err := c.get(ctx, c.adminKey(), &res)
	return res, err
}

func (c *AnalyticsECache) SetAdminStats(ctx context.Context, s domain.AdminStats) error {
	return c.set(ctx, c.adminKey(), s, adminExpiration)
}

func (c *AnalyticsECache) get(ctx context.Context, key string, dst any) error {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return ErrKeyNotFound
	}
	if val.Err != nil {
		return errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return errors.Wrap(err, "缓存数据格式不对")
	}
	err = json.Unmarshal([]byte(str), dst)
	return errors.Wrap(err, "反序列化统计数据失败")
}

func (c *AnalyticsECache) set(ctx context.Context, key string, val any, expiration time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化统计数据失败")
	}
	return c.ec.Set(ctx, key, string(data), expiration)
}

func (c *AnalyticsECache) overviewKey(uid int64) string {
	return fmt.Sprintf("overview:%d", uid)
}

func (c *AnalyticsECache) performanceKey(uid int64) string {
	return fmt.Sprintf("performance:%d", uid)
}

func (c *AnalyticsECache) adminKey() string {
	return "admin:stats"
}
