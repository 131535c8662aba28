package game

// Input 是每个 tick 采样一次的逻辑输入
//
// MoveLeft/MoveRight 为电平触发（按住即为 true）；
// Restart/Quit/Pause 为边沿触发（只在按下的那一帧为 true）。
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Restart   bool
	Quit      bool
	Pause     bool
}
