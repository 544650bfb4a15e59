package combat

import "gradquest/internal/geom"

const (
	maxEnemiesPerRow = 3
	enemyRowBackX    = 900.0
	enemyRowFrontX   = enemyRowBackX - 100 - 50
	enemyHeight      = 150.0
	enemyGap         = 75.0
)

// Formation returns the home positions of n enemies on a screen of the
// given height: up to three in a back row, the rest in a front row, each row
// vertically centred.
func Formation(n int, screenHeight float64) []geom.Vec2 {
	if n <= maxEnemiesPerRow {
		return column(n, enemyRowBackX, screenHeight)
	}
	back := column(maxEnemiesPerRow, enemyRowBackX, screenHeight)
	front := column(n-maxEnemiesPerRow, enemyRowFrontX, screenHeight)
	return append(back, front...)
}

func column(n int, x, screenHeight float64) []geom.Vec2 {
	out := make([]geom.Vec2, 0, n)
	total := float64(n)*enemyHeight + float64(n-1)*enemyGap
	y := screenHeight - (screenHeight-total)/2 - enemyHeight/2
	for i := 0; i < n; i++ {
		out = append(out, geom.V(x, y))
		y -= enemyGap + enemyHeight
	}
	return out
}
