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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/coach/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一条 SQL 创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registers := []func() error{
		func() error {
			return cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT"))
		},
		func() error {
			return cb.Query().After("gorm:query").Register("tracing:after_query", p.after("SELECT"))
		},
		func() error {
			return cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT"))
		},
		func() error {
			return cb.Create().After("gorm:create").Register("tracing:after_create", p.after("INSERT"))
		},
		func() error {
			return cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE"))
		},
		func() error {
			return cb.Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE"))
		},
		func() error {
			return cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE"))
		},
		func() error {
			return cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE"))
		},
		func() error {
			return cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW"))
		},
		func() error {
			return cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW"))
		},
		func() error {
			return cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("ROW"))
		},
		func() error {
			return cb.Row().After("gorm:row").Register("tracing:after_row", p.after("ROW"))
		},
	}
	for _, register := range registers {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		ctx, span := p.tracer.Start(db.Statement.Context,
			db.Statement.Table+" "+op,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		span.SetAttributes(attrs...)
		// 没有数据不算错误
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
