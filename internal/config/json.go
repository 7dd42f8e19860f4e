package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenAlgorithm   string   `json:"token_algorithm"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			Address  string   `json:"address"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			ListTTL  Duration `json:"list_ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress          string   `json:"http_address"`
		GRPCAddress          string   `json:"grpc_address"`
		RequestTimeout       Duration `json:"request_timeout"`
		SlowRequestThreshold Duration `json:"slow_request_threshold"`
	} `json:"server,omitempty"`

	Posts struct {
		MaxLimit int `json:"max_limit"`
	} `json:"posts,omitempty"`

	RateLimit struct {
		Register   Rate `json:"register"`
		Login      Rate `json:"login"`
		CreatePost Rate `json:"create_post"`
		DeletePost Rate `json:"delete_post"`
	} `json:"rate_limit,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenAlgorithm:   jsonCfg.App.TokenAlgorithm,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				Address:  jsonCfg.Storage.Cache.Address,
				Password: jsonCfg.Storage.Cache.Password,
				DB:       jsonCfg.Storage.Cache.DB,
				ListTTL:  time.Duration(jsonCfg.Storage.Cache.ListTTL),
			},
		},
		Server: Server{
			HTTPAddress:          jsonCfg.Server.HTTPAddress,
			GRPCAddress:          jsonCfg.Server.GRPCAddress,
			RequestTimeout:       time.Duration(jsonCfg.Server.RequestTimeout),
			SlowRequestThreshold: time.Duration(jsonCfg.Server.SlowRequestThreshold),
		},
		Posts: Posts{
			MaxLimit: jsonCfg.Posts.MaxLimit,
		},
		RateLimit: RateLimit{
			Register:   jsonCfg.RateLimit.Register,
			Login:      jsonCfg.RateLimit.Login,
			CreatePost: jsonCfg.RateLimit.CreatePost,
			DeletePost: jsonCfg.RateLimit.DeletePost,
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
