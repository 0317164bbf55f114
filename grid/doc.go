// Package grid models a fixed-size 2D map of cells with static obstacles,
// the shared substrate every search engine in gridpath runs on.
//
// What:
//
//   - Grid stores a W×H row-major layer of NodeType values (Open or Obstacle).
//   - Point and Direction describe positions and unit moves; North is +Y, East is +X.
//   - Random allocates a grid and scatters obstacles uniformly; duplicates collapse.
//   - Parse builds a grid from an ASCII literal, handy in tests and examples.
//   - View is the read-only surface handed to renderers and editing tools.
//
// Why:
//
//   - One canonical cell per position: identity is positional, never duplicated.
//   - Every lookup goes through IsInMap, so out-of-range access is impossible.
//   - Obstacle flags can be toggled in place between searches without reallocating.
//
// Concurrency:
//
//   - Grid guards its layer with a sync.RWMutex. Searches copy the layer under the
//     read lock (CopyLayer) and never touch the live grid afterwards, so edits and
//     searches may interleave freely; an edit affects only searches started later.
//
// Complexity:
//
//   - New, Random, Parse, CopyLayer, Cells: O(W×H) time and memory.
//   - IsInMap, IsWalkable, At, SetObstacle, Toggle: O(1).
//
// Errors:
//
//   - ErrBadDimensions: width or height ≤ 0.
//   - ErrNegativeObstacles: obstacle count < 0.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadGlyph: malformed ASCII literal.
package grid
