package config

import "time"

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpireHours int    `json:"expire_hours" yaml:"expire_hours"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}
