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
	SystemError       = ErrorCode{Code: 404001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 404002, Msg: "面试不存在"}
	InterviewClosed   = ErrorCode{Code: 404003, Msg: "面试已经结束"}
	AnswerNotFound    = ErrorCode{Code: 404004, Msg: "答案不存在"}
	InvalidRating     = ErrorCode{Code: 404005, Msg: "评分必须在 1 到 5 之间"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

func NewInvalidAnswerErr(msg string) ErrorCode {
	return ErrorCode{Code: 404006, Msg: msg}
}
