package app_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aiu-lab/facility-service/facility/app"
	"github.com/aiu-lab/facility-service/facility/config"
	"github.com/aiu-lab/facility-service/facility/internal/model"
)

func TestExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	deps, err := app.Build(ctx, &config.Config{
		Driver:   config.DriverMemory,
		TimeZone: "UTC",
		Rental:   config.Rental{DefaultDuration: 3},
	}, zap.NewNop())
	require.NoError(t, err)
	defer deps.Close()

	total := 2
	_, err = deps.Service.CreateEquipment(ctx, model.SystemActor, model.CreateEquipmentRequest{
		Code: "CAM-01", Name: "Camera", QuantityTotal: &total,
	})
	require.NoError(t, err)

	tests := []struct {
		kind  string
		lines int
		first string
	}{
		{kind: app.ExportEquipment, lines: 2, first: "id,code,name,"},
		{kind: app.ExportRentals, lines: 1, first: "id,equipment_id,"},
		{kind: app.ExportBookings, lines: 1, first: "id,lab,username,"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, app.Export(ctx, deps, tt.kind, &buf), tt.kind)
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, tt.lines, tt.kind)
		require.True(t, strings.HasPrefix(lines[0], tt.first), lines[0])
	}

	var buf bytes.Buffer
	require.NoError(t, app.Export(ctx, deps, app.ExportEquipment, &buf))
	require.Contains(t, buf.String(), ",CAM-01,Camera,")

	require.Error(t, app.Export(ctx, deps, "labs", &buf))
}
