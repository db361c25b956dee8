package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFile 경로가 읽을 수 있는 일반 파일인지 검증합니다. TLS 인증서/키 파일 확인에 사용합니다.
func ValidateFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("파일 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("파일이 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("파일 정보를 확인할 수 없습니다 (path=%q): %w", path, err)
	}

	// 디렉터리, 소켓, 디바이스 파일 등은 제외
	if !info.Mode().IsRegular() {
		return fmt.Errorf("일반 파일이 아닙니다 (path=%q, mode=%s)", path, info.Mode())
	}

	// 권한 비트만으로는 ACL 등을 판단할 수 없으므로 직접 열어서 확인합니다.
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("파일을 읽을 수 없습니다 (path=%q): %w", path, err)
	}
	_ = f.Close()

	return nil
}
