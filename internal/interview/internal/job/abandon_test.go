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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	svcmocks "github.com/ecodeclub/coach/internal/interview/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAbandonStaleInterviewsJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *svcmocks.MockService
		wantErr error
	}{
		{
			name: "放弃成功",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockService {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().AbandonStale(gomock.Any(), gomock.Any(), 50).
					DoAndReturn(func(ctx context.Context, before time.Time, batch int) (int64, error) {
						// 两个小时之前
						assert.WithinDuration(t, time.Now().Add(-2*time.Hour), before, time.Minute)
						_, ok := ctx.Deadline()
						assert.True(t, ok)
						return 3, nil
					})
				return svc
			},
		},
		{
			name: "失败",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockService {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().AbandonStale(gomock.Any(), gomock.Any(), 50).
					Return(int64(0), errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			job := NewAbandonStaleInterviewsJob(tc.mock(ctrl), 2*time.Hour, 50, time.Second)
			assert.Equal(t, "AbandonStaleInterviewsJob", job.Name())
			err := job.Run(context.Background())
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
