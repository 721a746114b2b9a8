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
	"errors"

	"github.com/ecodeclub/coach/internal/analytics/internal/domain"
)

var ErrKeyNotFound = errors.New("缓存中没有数据")

//go:generate mockgen -source=./types.go -package=cachemocks -destination=mocks/analytics.mock.go AnalyticsCache
type AnalyticsCache interface {
	GetOverview(ctx context.Context, uid int64) (domain.Overview, error)
	SetOverview(ctx context.Context, uid int64, o domain.Overview) error
	GetPerformance(ctx context.Context, uid int64) ([]domain.PerformancePoint, error)
	SetPerformance(ctx context.Context, uid int64, points []domain.PerformancePoint) error
	GetAdminStats(ctx context.Context) (domain.AdminStats, error)
	SetAdminStats(ctx context.Context, s domain.AdminStats) error
}
