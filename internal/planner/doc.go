// Package planner computes generation plans for the quadrant grid.
//
// A plan is an ordered list of generation steps, each covering 1, 2, or 4
// adjacent quadrants that are submitted together to the image generation
// model. Step order matters: later steps are planned to see more generated
// context, so plans must be executed strictly in order.
//
// Two planners share the same coordinate model and placement rules:
//   - CreateRectanglePlan fills a closed rectangular region using three
//     greedy passes (2x2 tiles, then 2x1/1x2 pairs, then 1x1 singles)
//   - CreateStripPlan expands an existing region outward from a generation
//     edge, with depth-aware patterns for 1, 2, and 3+ quadrant deep strips
//
// Both planners are pure functions over sets of grid coordinates: they
// perform no I/O, never mutate the generated set they are handed, and
// return the same plan for the same inputs. Validators replay the placement
// rules against a finished plan and collect every violation found.
package planner
