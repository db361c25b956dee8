package service_test

import (
	"testing"

	"github.com/darkkaiser/algoviz-server/internal/service"
	"github.com/darkkaiser/algoviz-server/internal/service/api"
)

func TestAPIServiceImplementsService(t *testing.T) {
	var _ service.Service = (*api.Service)(nil)
}
