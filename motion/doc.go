// Package motion implements an N-dimensional Cartesian trajectory planner.
//
// A Planner accepts a stream of waypoints (each with a velocity cap and an
// acceleration cap) and, at a fixed sampling rate, produces per-axis
// velocity/position/acceleration setpoints along the straight-line legs
// between successive waypoints. Corners formed by three consecutive
// waypoints slow the mover proportionally to the sharpness of the angle.
package motion
