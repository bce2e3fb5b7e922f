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

package config

type StagiairesConfig struct {
	DB     DBConfig
	Rating RatingConfig
	Email  EmailConfig
}

type DBConfig struct {
	DSN string
}

type RatingConfig struct {
	// MaxScore 评分上限，默认 5
	MaxScore int
}

type EmailConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	// AccountName 阿里云 DirectMail 的发信地址
	AccountName string
}
