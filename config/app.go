package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// ShareSalt 分享码 hashids 的盐
	ShareSalt string `json:"share_salt" yaml:"share_salt"`
}

// Log 日志输出
type Log struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file" yaml:"file"`
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
}

type Cors struct {
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
}
