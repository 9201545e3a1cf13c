// Package origami folds a sheet of marked points along horizontal and
// vertical lines.
//
// Input is a list of actions: either a point "x,y" to mark, or a fold
// "fold along x=N" / "fold along y=N". A fold reflects every point beyond its
// line onto the near half, x' = N - (x - N); overlapping points merge.
package origami
