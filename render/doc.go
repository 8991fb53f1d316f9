// Package render turns a laid-out panel tree into pictures: a PNG snapshot
// of every node's bounds, or an HTML page of absolutely positioned boxes.
//
// Renderers read the computed layout only. Run Tree.UpdateLayout first.
package render
