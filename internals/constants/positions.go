package constants

// Posisi akun internal FitScore.
const (
	PositionAvaliador = "avaliador" // reviewer penerima laporan high score
	PositionAdmin     = "admin"
)
