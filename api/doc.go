// Package api
// Author: momentics <momentics@gmail.com>
//
// Abstract contracts for fixed-capacity, address-stable object pooling.
//
// The api package contains only interfaces, error taxonomy and plain data
// types shared across the library. Implementations live in pool/ and
// control/; test doubles live in fake/.
package api
