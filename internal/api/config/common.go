package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// LogstashConfig 远程日志配置，address 为空则只写 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// IngestConfig 歌曲目录导入配置
type IngestConfig struct {
	DataPath  string `mapstructure:"data_path"`
	BatchSize int    `mapstructure:"batch_size"`
}
