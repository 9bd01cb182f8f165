package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Parser   ParserConfig   `mapstructure:"parser"`
	Aria2    Aria2Config    `mapstructure:"aria2"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Watcher  WatcherConfig  `mapstructure:"watcher"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	QPS  int    `mapstructure:"qps"` // 每秒请求数限制,0 表示不限制
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Output     string `mapstructure:"output"` // console | stderr | file | both
	Format     string `mapstructure:"format"` // text | json
	FilePath   string `mapstructure:"file_path"`
	Colorize   bool   `mapstructure:"colorize"`
	AddSource  bool   `mapstructure:"add_source"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type ParserConfig struct {
	Tagger          string        `mapstructure:"tagger"` // rls | ptt | ptn
	EnrichMediaInfo bool          `mapstructure:"enrich_media_info"`
	FFprobePath     string        `mapstructure:"ffprobe_path"`
	ProbeTimeout    time.Duration `mapstructure:"probe_timeout"`
	CustomWords     []string      `mapstructure:"custom_words"`
	CustomWordsFile string        `mapstructure:"custom_words_file"` // 每行一条,# 开头为注释
	Customization   []string      `mapstructure:"customization"`     // 命中的正则以 @ 拼接写入 customization
	VideoExtensions []string      `mapstructure:"video_extensions"`  // 为空时使用内置列表
}

type Aria2Config struct {
	RpcURL      string `mapstructure:"rpc_url"`
	Token       string `mapstructure:"token"`
	DownloadDir string `mapstructure:"download_dir"`
}

type TelegramConfig struct {
	BotToken string  `mapstructure:"bot_token"`
	ChatIDs  []int64 `mapstructure:"chat_ids"`
	Enabled  bool    `mapstructure:"enabled"`
	AdminIDs []int64 `mapstructure:"admin_ids"`
}

type WatcherConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Cron      string `mapstructure:"cron"`  // cron表达式,如 "*/5 * * * *" 每5分钟
	Batch     int    `mapstructure:"batch"` // 每次拉取的已完成任务数
	Notify    bool   `mapstructure:"notify"`
	StateFile string `mapstructure:"state_file"` // 已处理任务的记录文件,为空时只在内存中去重
}

// Address 监听地址
func (s ServerConfig) Address() string {
	return s.Host + ":" + s.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.qps", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "console")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file_path", "logs/metainfo.log")
	v.SetDefault("log.colorize", true)
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	// 解析器默认值
	v.SetDefault("parser.tagger", "rls")
	v.SetDefault("parser.enrich_media_info", false)
	v.SetDefault("parser.ffprobe_path", "ffprobe")
	v.SetDefault("parser.probe_timeout", "10s")
	v.SetDefault("parser.custom_words", []string{})
	v.SetDefault("parser.customization", []string{})
	v.SetDefault("parser.video_extensions", []string{})

	v.SetDefault("aria2.rpc_url", "http://localhost:6800/jsonrpc")
	v.SetDefault("aria2.download_dir", "/downloads")
	v.SetDefault("telegram.enabled", false)

	v.SetDefault("watcher.enabled", false)
	v.SetDefault("watcher.cron", "*/5 * * * *")
	v.SetDefault("watcher.batch", 50)
	v.SetDefault("watcher.notify", true)
	v.SetDefault("watcher.state_file", "data/watcher_seen.json")
}

// LoadConfig 从 ./configs 或当前目录读取 config.yaml
func LoadConfig() (*Config, error) {
	return Load("./configs", ".")
}

// Load 在给定目录中查找 config.yaml,找不到时只使用默认值和环境变量
// 环境变量前缀 METAINFO_,如 METAINFO_PARSER_TAGGER=ptt
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("METAINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &config, nil
}
