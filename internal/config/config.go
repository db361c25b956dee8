package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/darkkaiser/algoviz-server/internal/generator"
	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "algoviz-server"

	// DefaultFilename 명시적인 경로가 주어지지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: ALGOVIZ_API__LISTEN_PORT=8080 -> api.listen_port
	EnvPrefix = "ALGOVIZ_"

	// EnvConfigFile 설정 파일 경로를 지정하는 환경 변수입니다. 설정 키로는 취급하지 않습니다.
	EnvConfigFile = EnvPrefix + "CONFIG_FILE"
)

const (
	DefaultListenPort     = 5001
	DefaultRequestTimeout = "60s"

	DefaultRateLimitRequestsPerSecond = 20
	DefaultRateLimitBurst             = 40

	DefaultMaxArraySize = generator.DefaultMaxArraySize
	DefaultMaxGridRows  = generator.DefaultMaxGridRows
	DefaultMaxGridCols  = generator.DefaultMaxGridCols

	DefaultLogDir = "logs"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	API       APIConfig       `json:"api"`
	Generator GeneratorConfig `json:"generator"`
	Metrics   MetricsConfig   `json:"metrics"`
	Log       LogConfig       `json:"log"`
}

// newDefaultConfig 설정 파일이 없어도 서버가 구동될 수 있는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: true,
		API: APIConfig{
			ListenPort:     DefaultListenPort,
			RequestTimeout: DefaultRequestTimeout,
			SwaggerEnabled: true,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRateLimitRequestsPerSecond,
				Burst:             DefaultRateLimitBurst,
			},
		},
		Generator: GeneratorConfig{
			MaxArraySize: DefaultMaxArraySize,
			MaxGridRows:  DefaultMaxGridRows,
			MaxGridCols:  DefaultMaxGridCols,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Dir: DefaultLogDir,
		},
	}
}

// validate 로드 직후 각 설정 항목의 정합성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.API.validate(); err != nil {
		return err
	}
	if err := checkStruct(validate, c.Generator, "배열/격자 생성기(generator)"); err != nil {
		return err
	}
	if err := checkStruct(validate, c.Log, "로그(log)"); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 운영 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않으며, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}
	if !c.Debug && len(c.API.CORS.AllowOrigins) == 1 && c.API.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "운영 모드에서 모든 출처(*)의 CORS 요청을 허용하고 있습니다. 프론트엔드 도메인만 허용하도록 제한하는 것을 권장합니다")
	}
	if !c.Debug && c.API.SwaggerEnabled {
		warnings = append(warnings, "운영 모드에서 Swagger UI가 활성화되어 있습니다")
	}

	return warnings
}

// APIConfig HTTP API 서버 설정
type APIConfig struct {
	ListenPort     int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer      bool            `json:"tls_server"`
	TLSCertFile    string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
	TLSKeyFile     string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,readable_file"`
	RequestTimeout string          `json:"request_timeout"`
	SwaggerEnabled bool            `json:"swagger_enabled"`
	CORS           CORSConfig      `json:"cors"`
	RateLimit      RateLimitConfig `json:"rate_limit"`
}

func (c *APIConfig) validate() error {
	if err := checkStruct(validate, c, "API 서버(api)", "ListenPort", "TLSCertFile", "TLSKeyFile"); err != nil {
		return err
	}

	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 타임아웃(request_timeout) 설정이 올바르지 않습니다: '%s' (예: 30s, 1m)", c.RequestTimeout))
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	return checkStruct(validate, c.RateLimit, "요청 속도 제한(rate_limit)")
}

// RequestTimeoutDuration 요청 타임아웃을 time.Duration으로 반환합니다. validate()를 통과한 설정에서만 호출해야 합니다.
func (c *APIConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// CORSConfig 브라우저의 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return checkStruct(validate, c, "CORS(cors)")
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한(토큰 버킷) 설정
//
// 기본적으로 비활성화되어 있으며, 공개된 환경에 배포하는 경우에만 활성화합니다.
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled"`
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"min=1"`
}

// GeneratorConfig 한 번의 요청으로 생성할 수 있는 데이터의 상한
type GeneratorConfig struct {
	MaxArraySize int `json:"max_array_size" validate:"min=1"`
	MaxGridRows  int `json:"max_grid_rows" validate:"min=1"`
	MaxGridCols  int `json:"max_grid_cols" validate:"min=1"`
}

// MetricsConfig Prometheus 메트릭 노출 설정
type MetricsConfig struct {
	Enabled bool `json:"enabled"`
}

// LogConfig 로그 파일 설정
type LogConfig struct {
	Dir string `json:"dir" validate:"required"`
}

// Load 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
// ALGOVIZ_CONFIG_FILE 환경 변수가 지정되어 있으면 해당 경로를, 아니면 기본 파일명을 사용합니다.
func Load() (*AppConfig, error) {
	filename := DefaultFilename
	if v := strings.TrimSpace(os.Getenv(EnvConfigFile)); v != "" {
		filename = v
	}
	return LoadWithFile(filename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위: 기본값 < JSON 설정 파일 < 환경 변수
// 설정 파일이 존재하지 않으면 기본값과 환경 변수만으로 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (정의되지 않은 키가 있으면 에러)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	unmarshalConf.DecoderConfig.Result = &appConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 정합성 검증
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수명을 설정 키로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)로 바뀝니다. 빈 문자열을 반환하면 해당 변수는 무시됩니다.
func normalizeEnvKey(s string) string {
	if s == EnvConfigFile {
		return ""
	}
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
