// Package harness runs storefront scenarios described in YAML.
//
// A scenario drives a fresh storefront (in-memory slots, stepped clock,
// sequential ids) through a list of steps and then checks assertions
// against the final state. Every step records a trace event with its
// outcome: "ok" or the error code it returned.
//
// # Scenario Format
//
//	name: merge_same_name
//	description: "Adding the same item twice merges into one line"
//	setup:
//	  - op: register
//	    args: { name: A, email: a@x.com, password: p1 }
//	flow:
//	  - op: add
//	    args: { name: Latte, price: 220, image: latte.png }
//	  - op: place_order
//	    args: { pickup_time: "07:59" }
//	    expect: { error: PICKUP_TIME_OUT_OF_RANGE }
//	assertions:
//	  - type: cart_item
//	    name: Latte
//	    quantity: 1
//	  - type: cart_total
//	    total: 220
//
// # Operations
//
//   - register: name, email, password, confirm (defaults to password)
//   - login: email, password
//   - logout
//   - add: name, price (number or raw string), image
//   - add_menu: id
//   - remove: id or name
//   - quantity: id or name, delta
//   - place_order: pickup_time
//   - reload: re-read the state from the slots
//
// Setup steps must succeed. A flow step without expect must succeed too.
//
// # Assertion Types
//
//   - cart_lines: number of cart lines equals count
//   - cart_item: the line with this name has this quantity
//   - item_count: sum of cart quantities equals count
//   - cart_total: cart total equals total
//   - order_count: number of orders (for email, if set) equals count
//   - last_order: the newest order (for email, if set) has this status and total
//   - user_count: number of registered users equals count
//   - current_user: the signed-in email equals email ("" for none)
package harness
