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

import "encoding/json"

// TutorCriteria 实习生评价导师的分项评分
type TutorCriteria struct {
	Availability        float64 `json:"availability"`
	Guidance            float64 `json:"guidance"`
	Communication       float64 `json:"communication"`
	Expertise           float64 `json:"expertise"`
	Support             float64 `json:"support"`
	Feedback            float64 `json:"feedback"`
	OverallSatisfaction float64 `json:"overallSatisfaction"`
}

// StandardCriteria 评价实习生用的标准分项评分（导师和 HR 共用）
type StandardCriteria struct {
	TechnicalSkills    float64 `json:"technicalSkills"`
	Communication      float64 `json:"communication"`
	Teamwork           float64 `json:"teamwork"`
	Initiative         float64 `json:"initiative"`
	Punctuality        float64 `json:"punctuality"`
	ProblemSolving     float64 `json:"problemSolving"`
	Adaptability       float64 `json:"adaptability"`
	OverallPerformance float64 `json:"overallPerformance"`
}

// Criteria 按评价类型二选一：InternToTutor 用 Tutor，其余用 Standard
type Criteria struct {
	Tutor    *TutorCriteria
	Standard *StandardCriteria
}

func (c Criteria) IsZero() bool {
	return c.Tutor == nil && c.Standard == nil
}

// EncodeCriteria 把分项评分编码成持久化用的 blob。
// 没填分项返回空串，和 kind 对不上的分项直接丢弃。
func EncodeCriteria(kind Kind, c Criteria) (string, error) {
	if kind == KindInternToTutor {
		if c.Tutor == nil {
			return "", nil
		}
		data, err := json.Marshal(c.Tutor)
		return string(data), err
	}
	if c.Standard == nil {
		return "", nil
	}
	data, err := json.Marshal(c.Standard)
	return string(data), err
}

// DecodeCriteria 解码分项评分。这是个全函数：blob 缺失或者坏掉都不报错，
// 而是用总分填满每个分项，保证调用方拿到的永远是完整的结构
func DecodeCriteria(kind Kind, blob string, score float64) Criteria {
	if kind == KindInternToTutor {
		if blob != "" {
			var tc TutorCriteria
			if err := json.Unmarshal([]byte(blob), &tc); err == nil {
				return Criteria{Tutor: &tc}
			}
		}
		return Criteria{Tutor: &TutorCriteria{
			Availability:        score,
			Guidance:            score,
			Communication:       score,
			Expertise:           score,
			Support:             score,
			Feedback:            score,
			OverallSatisfaction: score,
		}}
	}
	if blob != "" {
		var sc StandardCriteria
		if err := json.Unmarshal([]byte(blob), &sc); err == nil {
			return Criteria{Standard: &sc}
		}
	}
	return Criteria{Standard: &StandardCriteria{
		TechnicalSkills:    score,
		Communication:      score,
		Teamwork:           score,
		Initiative:         score,
		Punctuality:        score,
		ProblemSolving:     score,
		Adaptability:       score,
		OverallPerformance: score,
	}}
}
