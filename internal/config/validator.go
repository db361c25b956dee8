package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/algoviz-server/internal/pkg/errors"
	"github.com/darkkaiser/algoviz-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스입니다. (스레드 안전)
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명(ListenPort) 대신 설정 키 이름(listen_port)이 나오도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("readable_file", validateReadableFile); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'readable_file' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin validator 태그를 pkg/validation의 검증 로직에 연결합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

func validateReadableFile(fl validator.FieldLevel) bool {
	return validation.ValidateFile(fl.Field().String()) == nil
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 오류를 사용자 친화적인 도메인 에러로 변환합니다.
//
// fields를 지정하면 해당 필드만 부분 검증(StructPartial)합니다.
func checkStruct(v *validator.Validate, s any, contextName string, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.StructPartial(s, fields...)
	} else {
		err = v.Struct(s)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]

	switch fe.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "TLSCertFile", "TLSKeyFile":
		key := fe.Field()
		if fe.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 설정은 필수입니다", key))
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s에 지정된 파일을 읽을 수 없습니다: '%v'", key, fe.Value()))
	}

	switch fe.Tag() {
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "min", "gt":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 너무 작습니다: '%v' (조건: %s=%s)", contextName, fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
	case "required":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 설정은 필수입니다", contextName, fe.Field()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}
