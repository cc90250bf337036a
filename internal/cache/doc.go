// Package cache implements a fixed-capacity, in-memory key–value cache with LRU eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map + doubly-linked list)
//   - Provide O(1) Put/Get/Remove via map index + list pointers
//   - Keep the core single-threaded; Locked adds mutual exclusion when needed
//   - Report activity through Listener and Stats instead of logging
package cache
