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

package domain

import (
	"errors"
	"time"
)

var (
	ErrUnknownKind   = errors.New("未知的评价类型")
	ErrUnknownStatus = errors.New("未知的评价状态")
)

// Rating 一条评价记录，评价引擎的核心实体
type Rating struct {
	ID              int64
	EvaluatorId     int64
	EvaluatedUserId int64
	Kind            Kind
	// Score 总分，业务上限制在 [1, maxScore]，maxScore 走配置
	Score   float64
	Comment string
	// DetailedScores 分项评分的编码结果，可能为空，解码统一走 DecodeCriteria
	DetailedScores string
	Status         Status

	// 评价覆盖的实习周期，零值表示未指定
	PeriodStart time.Time
	PeriodEnd   time.Time
	// StageReference 关联实习的自由标记
	StageReference string

	SubmittedAt      time.Time
	ApprovedAt       time.Time
	ApprovedByUserId int64
	Response         string
	ResponseDate     time.Time

	Ctime time.Time
	Utime time.Time
}

// Editable 只有草稿和已提交状态允许评价人修改或删除
func (r Rating) Editable() bool {
	return r.Status == RatingStatusDraft || r.Status == RatingStatusSubmitted
}

func (r Rating) HasPeriod() bool {
	return !r.PeriodStart.IsZero() && !r.PeriodEnd.IsZero()
}

type Kind uint8

const (
	KindUnknown Kind = 0
	// KindTutorToIntern 导师评价自己带的实习生
	KindTutorToIntern Kind = 1
	// KindInternToTutor 实习生评价自己的导师
	KindInternToTutor Kind = 2
	// KindHRToIntern HR 评价任意实习生
	KindHRToIntern Kind = 3
)

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

func (k Kind) String() string {
	switch k {
	case KindTutorToIntern:
		return "TutorToIntern"
	case KindInternToTutor:
		return "InternToTutor"
	case KindHRToIntern:
		return "HRToIntern"
	default:
		return "Unknown"
	}
}

// ParseKind 把外部传入的字符串解析成 Kind，不认识的一律报错，不做默认值兜底
func ParseKind(s string) (Kind, error) {
	switch s {
	case "TutorToIntern":
		return KindTutorToIntern, nil
	case "InternToTutor":
		return KindInternToTutor, nil
	case "HRToIntern":
		return KindHRToIntern, nil
	default:
		return KindUnknown, ErrUnknownKind
	}
}

type Status uint8

const (
	RatingStatusUnknown   Status = 0
	RatingStatusDraft     Status = 1
	RatingStatusSubmitted Status = 2
	RatingStatusApproved  Status = 3
	RatingStatusRejected  Status = 4
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case RatingStatusDraft:
		return "Draft"
	case RatingStatusSubmitted:
		return "Submitted"
	case RatingStatusApproved:
		return "Approved"
	case RatingStatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "Draft":
		return RatingStatusDraft, nil
	case "Submitted":
		return RatingStatusSubmitted, nil
	case "Approved":
		return RatingStatusApproved, nil
	case "Rejected":
		return RatingStatusRejected, nil
	default:
		return RatingStatusUnknown, ErrUnknownStatus
	}
}

// CountsTowardStats 草稿没提交不算数，被拒绝的也不算数
func (s Status) CountsTowardStats() bool {
	return s == RatingStatusSubmitted || s == RatingStatusApproved
}
