package response

// ArrayGenerationResponse 배열 생성 성공 응답
type ArrayGenerationResponse struct {
	Success bool `json:"success" example:"true"`

	// 생성된 배열. 길이는 size와 같습니다.
	Array []int `json:"array" example:"42,7,93,15,61"`

	// 배열 길이
	Size int `json:"size" example:"5"`
}

// GridGenerationResponse 격자 생성 성공 응답
type GridGenerationResponse struct {
	Success bool `json:"success" example:"true"`

	// rows×cols 행렬 (0: 빈 칸, 1: 장애물)
	Grid [][]int `json:"grid"`

	Rows int `json:"rows" example:"15"`
	Cols int `json:"cols" example:"15"`

	// 시작 좌표 [행, 열]. 항상 [0, 0]
	Start [2]int `json:"start" example:"0,0"`

	// 도착 좌표 [행, 열]. 항상 [rows-1, cols-1]
	End [2]int `json:"end" example:"14,14"`
}
