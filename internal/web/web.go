// Package web 랜딩 페이지 템플릿과 정적 자원(CSS, JS)을 실행 파일에 포함하여 제공합니다.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// IndexData 랜딩 페이지 렌더링에 사용되는 값
type IndexData struct {
	ServiceName string
	Version     string

	DefaultArraySize   int
	DefaultArrayMinVal int
	DefaultArrayMaxVal int
	MaxArraySize       int

	DefaultGridRows           int
	DefaultGridCols           int
	DefaultObstaclePercentage float64
	MaxGridRows               int
	MaxGridCols               int
}

// Renderer 랜딩 페이지 템플릿을 렌더링합니다.
type Renderer struct {
	templates *template.Template
}

// NewRenderer 포함된 템플릿을 파싱하여 Renderer를 생성합니다.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render name 템플릿을 data로 렌더링하여 w에 기록합니다.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// StaticFS "static" 디렉터리를 루트로 하는 정적 자원 파일 시스템을 반환합니다.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// 컴파일 시점에 포함된 경로이므로 실패할 수 없습니다.
		panic(err)
	}
	return sub
}
