package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Log      *Log      `json:"log" yaml:"log"`
	Cors     *Cors     `json:"cors" yaml:"cors"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml, 缺省段落填默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSqlite
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpireHours == 0 {
		c.Jwt.ExpireHours = 72
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Cors == nil {
		c.Cors = &Cors{AllowOrigins: []string{"*"}}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
