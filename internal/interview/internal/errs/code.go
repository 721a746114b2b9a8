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

package errs

var (
	SystemError       = ErrorCode{Code: 402001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 402002, Msg: "面试不存在"}
	InterviewClosed   = ErrorCode{Code: 402003, Msg: "面试已经结束"}
	InvalidStatus     = ErrorCode{Code: 402004, Msg: "非法的面试状态"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
