package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Versifine/stride/internal/geom"
)

const courtyardYAML = `name: courtyard
spawn: [1.5, 0, 1.5]
floor: 0
layers:
  - y: -1
    fill: true
  - y: 0
    rows:
      - "#####"
      - "#...#"
      - "#.#.#"
      - "#####"
walls:
  - [0, 0, 5, 0]
  - [5, 0, 5, 4]
`

// TestParseLevel 测试关卡 YAML 的解析
func TestParseLevel(t *testing.T) {
	level, err := Parse([]byte(courtyardYAML))
	if err != nil {
		t.Fatalf("Parse() 返回错误: %v", err)
	}

	if level.Name != "courtyard" {
		t.Errorf("Name = %q, 期望 %q", level.Name, "courtyard")
	}
	if level.Spawn[0] != 1.5 || level.Spawn[1] != 0 || level.Spawn[2] != 1.5 {
		t.Errorf("Spawn = %v", level.Spawn)
	}

	// 填充层覆盖 5x4 的完整范围
	for x := 0; x < 5; x++ {
		for z := 0; z < 4; z++ {
			if !level.Grid.IsSolid(x, -1, z) {
				t.Fatalf("地面方块 (%d,-1,%d) 应为实心", x, z)
			}
		}
	}
	if level.Grid.IsSolid(5, -1, 0) {
		t.Error("填充范围之外不应有方块")
	}

	if !level.Grid.IsSolid(0, 0, 0) || !level.Grid.IsSolid(2, 0, 2) {
		t.Error("墙体方块缺失")
	}
	if level.Grid.IsSolid(1, 0, 1) {
		t.Error("(1,0,1) 应为空地")
	}

	if len(level.Walls) != 2 {
		t.Fatalf("Walls = %d, 期望 2", len(level.Walls))
	}
	if level.Walls[1].A != [2]float64{5, 0} || level.Walls[1].B != [2]float64{5, 4} {
		t.Errorf("Walls[1] = %+v", level.Walls[1])
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "出生点坐标数量错误",
			content: "spawn: [1, 2]\n",
			wantMsg: "spawn",
		},
		{
			name:    "填充层同时带有行数据",
			content: "layers:\n  - y: 0\n    fill: true\n    rows: [\"#\"]\n",
			wantMsg: "exclusive",
		},
		{
			name:    "只有填充层",
			content: "layers:\n  - y: 0\n    fill: true\n",
			wantMsg: "row layer",
		},
		{
			name:    "YAML格式错误",
			content: "layers: [\n",
			wantMsg: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("错误信息 %q 应包含 %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yaml")
	if err := os.WriteFile(path, []byte(courtyardYAML), 0o644); err != nil {
		t.Fatalf("写入关卡文件失败: %v", err)
	}

	level, err := Load(path)
	if err != nil {
		t.Fatalf("Load() 返回错误: %v", err)
	}
	if level.Grid.Len() == 0 {
		t.Fatal("关卡网格为空")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("期望文件不存在错误，实际: %v", err)
	}
}

func TestFlat(t *testing.T) {
	level := Flat(8)
	if level.Grid.Len() != 64 {
		t.Fatalf("Grid.Len() = %d, want 64", level.Grid.Len())
	}
	if level.Spawn != (geom.Vec3{4, 0, 4}) {
		t.Fatalf("Spawn = %v, want [4 0 4]", level.Spawn)
	}
	if !level.Grid.IsSolid(7, -1, 7) || level.Grid.IsSolid(8, -1, 0) {
		t.Fatal("地板范围错误")
	}
	if len(level.Walls) != 4 {
		t.Fatalf("Walls = %d, want 4", len(level.Walls))
	}
	if Flat(0).Grid.Len() != 1 {
		t.Fatal("尺寸至少为 1")
	}
}

// TestShippedLevels 确保仓库自带的关卡可以加载，且出生点不在方块内
func TestShippedLevels(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "levels", "*.yaml"))
	if err != nil {
		t.Fatalf("Glob() 返回错误: %v", err)
	}
	if len(paths) == 0 {
		t.Skip("没有关卡文件")
	}
	for _, path := range paths {
		level, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) 返回错误: %v", path, err)
		}
		x, y, z := int(level.Spawn[0]), int(level.Spawn[1]), int(level.Spawn[2])
		if level.Grid.IsSolid(x, y, z) {
			t.Errorf("%s: 出生点 (%d,%d,%d) 在方块内", path, x, y, z)
		}
		if !level.Grid.IsSolid(x, y-1, z) {
			t.Errorf("%s: 出生点下方没有地面", path)
		}
	}
}
