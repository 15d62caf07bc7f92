package config

// Frame indices into the archer tileset (17 frames, one row).
const (
	DownAttack0  = 0
	DownAttack1  = 1
	LeftAttack0  = 2
	LeftAttack1  = 3
	RightAttack0 = 4
	RightAttack1 = 5
	UpAttack0    = 6
	UpAttack1    = 7

	Dead0 = 8 // present in the sheet, no state shows it yet

	DownIdle0  = 9
	DownIdle1  = 10
	LeftIdle0  = 11
	LeftIdle1  = 12
	RightIdle0 = 13
	RightIdle1 = 14
	UpIdle0    = 15
	UpIdle1    = 16

	TilesetFrames = 17
)

// Arrow texture indices in the asset registry.
const (
	ArrowHorizontal = 0
	ArrowDiagonal   = 1
	ArrowVertical   = 2

	ArrowTextureCount = 3
)
