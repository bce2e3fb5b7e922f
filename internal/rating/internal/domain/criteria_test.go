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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCriteria(t *testing.T) {
	testCases := []struct {
		name     string
		kind     Kind
		criteria Criteria
		wantRes  string
	}{
		{
			name:     "没填分项返回空串",
			kind:     KindTutorToIntern,
			criteria: Criteria{},
			wantRes:  "",
		},
		{
			name: "实习生评导师用 Tutor 分项",
			kind: KindInternToTutor,
			criteria: Criteria{Tutor: &TutorCriteria{
				Availability:        4,
				Guidance:            5,
				Communication:       4,
				Expertise:           5,
				Support:             4,
				Feedback:            3,
				OverallSatisfaction: 4,
			}},
			wantRes: `{"availability":4,"guidance":5,"communication":4,"expertise":5,"support":4,"feedback":3,"overallSatisfaction":4}`,
		},
		{
			name: "评实习生时传错了 Tutor 分项会被丢弃",
			kind: KindTutorToIntern,
			criteria: Criteria{Tutor: &TutorCriteria{
				Availability: 4,
			}},
			wantRes: "",
		},
		{
			name: "HR 评实习生用 Standard 分项",
			kind: KindHRToIntern,
			criteria: Criteria{Standard: &StandardCriteria{
				TechnicalSkills:    4,
				Communication:      3,
				Teamwork:           5,
				Initiative:         4,
				Punctuality:        5,
				ProblemSolving:     4,
				Adaptability:       3,
				OverallPerformance: 4,
			}},
			wantRes: `{"technicalSkills":4,"communication":3,"teamwork":5,"initiative":4,"punctuality":5,"problemSolving":4,"adaptability":3,"overallPerformance":4}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := EncodeCriteria(tc.kind, tc.criteria)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestDecodeCriteria(t *testing.T) {
	testCases := []struct {
		name    string
		kind    Kind
		blob    string
		score   float64
		wantRes Criteria
	}{
		{
			name:  "正常解码 Standard 分项",
			kind:  KindTutorToIntern,
			blob:  `{"technicalSkills":4,"communication":3,"teamwork":5,"initiative":4,"punctuality":5,"problemSolving":4,"adaptability":3,"overallPerformance":4}`,
			score: 4,
			wantRes: Criteria{Standard: &StandardCriteria{
				TechnicalSkills:    4,
				Communication:      3,
				Teamwork:           5,
				Initiative:         4,
				Punctuality:        5,
				ProblemSolving:     4,
				Adaptability:       3,
				OverallPerformance: 4,
			}},
		},
		{
			name:  "blob 为空时用总分填满",
			kind:  KindHRToIntern,
			blob:  "",
			score: 3,
			wantRes: Criteria{Standard: &StandardCriteria{
				TechnicalSkills:    3,
				Communication:      3,
				Teamwork:           3,
				Initiative:         3,
				Punctuality:        3,
				ProblemSolving:     3,
				Adaptability:       3,
				OverallPerformance: 3,
			}},
		},
		{
			name:  "blob 坏掉时用总分填满",
			kind:  KindInternToTutor,
			blob:  `{invalid json`,
			score: 5,
			wantRes: Criteria{Tutor: &TutorCriteria{
				Availability:        5,
				Guidance:            5,
				Communication:       5,
				Expertise:           5,
				Support:             5,
				Feedback:            5,
				OverallSatisfaction: 5,
			}},
		},
		{
			name:  "正常解码 Tutor 分项",
			kind:  KindInternToTutor,
			blob:  `{"availability":4,"guidance":5,"communication":4,"expertise":5,"support":4,"feedback":3,"overallSatisfaction":4}`,
			score: 4,
			wantRes: Criteria{Tutor: &TutorCriteria{
				Availability:        4,
				Guidance:            5,
				Communication:       4,
				Expertise:           5,
				Support:             4,
				Feedback:            3,
				OverallSatisfaction: 4,
			}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := DecodeCriteria(tc.kind, tc.blob, tc.score)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  error
	}{
		{name: "导师评实习生", input: "TutorToIntern", wantKind: KindTutorToIntern},
		{name: "实习生评导师", input: "InternToTutor", wantKind: KindInternToTutor},
		{name: "HR评实习生", input: "HRToIntern", wantKind: KindHRToIntern},
		{name: "不认识的类型", input: "PeerToPeer", wantKind: KindUnknown, wantErr: ErrUnknownKind},
		{name: "空串", input: "", wantKind: KindUnknown, wantErr: ErrUnknownKind},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := ParseKind(tc.input)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantKind, kind)
			if err == nil {
				assert.Equal(t, tc.input, kind.String())
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantStatus Status
		wantErr    error
	}{
		{name: "草稿", input: "Draft", wantStatus: RatingStatusDraft},
		{name: "已提交", input: "Submitted", wantStatus: RatingStatusSubmitted},
		{name: "已通过", input: "Approved", wantStatus: RatingStatusApproved},
		{name: "已拒绝", input: "Rejected", wantStatus: RatingStatusRejected},
		{name: "不认识的状态", input: "Pending", wantStatus: RatingStatusUnknown, wantErr: ErrUnknownStatus},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := ParseStatus(tc.input)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestStatus_CountsTowardStats(t *testing.T) {
	assert.False(t, RatingStatusDraft.CountsTowardStats())
	assert.True(t, RatingStatusSubmitted.CountsTowardStats())
	assert.True(t, RatingStatusApproved.CountsTowardStats())
	assert.False(t, RatingStatusRejected.CountsTowardStats())
}

func TestRating_Editable(t *testing.T) {
	assert.True(t, Rating{Status: RatingStatusDraft}.Editable())
	assert.True(t, Rating{Status: RatingStatusSubmitted}.Editable())
	assert.False(t, Rating{Status: RatingStatusApproved}.Editable())
	assert.False(t, Rating{Status: RatingStatusRejected}.Editable())
}
