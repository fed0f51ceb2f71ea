/*
Package gbtree grows a single regression tree from per-instance
gradients and hessians against a sparse feature matrix.

A tree is built by a depth-first task scheduler: the root (or one root
per group, for grouped/multi-root training) is pushed as a pending
expansion task, and the updater pops tasks until none remain. Each
task reprojects its rows into a column-major scratch buffer, enumerates
candidate splits per feature (forward and backward sweeps to handle
rows with a missing value for that feature), and either installs a
split and pushes two child tasks, or installs a leaf and runs pruning
back up toward the root.

The design mirrors the tree updater described in Tianqi Chen's
original XGBoost prototype: row ids are partitioned in place, the
split index packs the default direction into its sign bit at the tree
storage boundary, and nodes missing a feature follow the side recorded
at split time.
*/
package gbtree
