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

package ioc

import (
	"github.com/ecodeclub/coach/internal/question"
	"github.com/ecodeclub/coach/internal/user"
)

// initConsumers 每个模块用自己的消费组订阅 answer_scored_events
func initConsumers(userModule *user.Module, questionModule *question.Module) []Consumer {
	return []Consumer{
		userModule.C,
		questionModule.C,
	}
}
