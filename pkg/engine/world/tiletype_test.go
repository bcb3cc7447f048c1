package world

import "testing"

func TestIsWallReplaceable(t *testing.T) {
	cases := map[TileType]bool{
		Empty:     true,
		DebugWall: true,
		Obstacle:  true,
		Floor:     false,
		Wall:      false,
		Player:    false,
	}
	for tile, want := range cases {
		if got := IsWallReplaceable(tile); got != want {
			t.Errorf("IsWallReplaceable(%v) = %v, want %v", tile, got, want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	cases := map[TileType]bool{
		Wall:     false,
		Obstacle: false,
		Floor:    true,
		Empty:    true,
		Player:   true,
	}
	for tile, want := range cases {
		if got := IsWalkable(tile); got != want {
			t.Errorf("IsWalkable(%v) = %v, want %v", tile, got, want)
		}
	}
}

func TestIsCarvable(t *testing.T) {
	if IsCarvable(Obstacle) {
		t.Error("OBSTACLE must not be carvable")
	}
	for _, tile := range []TileType{Empty, Floor, Wall} {
		if !IsCarvable(tile) {
			t.Errorf("%v should be carvable", tile)
		}
	}
}

func TestIsFloorLike(t *testing.T) {
	if !IsFloorLike(Floor) || !IsFloorLike(Player) || !IsFloorLike(Enemy1) {
		t.Error("FLOOR and entities stamped on top of it should be floor-like")
	}
	for _, tile := range []TileType{Wall, Obstacle, DebugWall, Empty} {
		if IsFloorLike(tile) {
			t.Errorf("%v should not be floor-like", tile)
		}
	}
}

func TestTileType_StringCoversAllConstants(t *testing.T) {
	tiles := []TileType{
		Empty, Floor, Wall, Obstacle, DebugWall, Player, Enemy1,
		HealthPotion, ArmourPotion, HealthBoostPotion, ArmourBoostPotion,
		SpeedBoostPotion, FireRateBoostPotion,
	}
	for _, tile := range tiles {
		if got := tile.String(); got == "UNKNOWN" {
			t.Errorf("String() for %d reports UNKNOWN", tile)
		}
	}
	if got := TileType(127).String(); got != "UNKNOWN" {
		t.Errorf("String() for out-of-range tile = %q, want UNKNOWN", got)
	}
}
