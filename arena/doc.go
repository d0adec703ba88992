// Package arena provides bump allocators that group the allocations of one
// unit of work for release in bulk.
//
// [Arena] hands out raw byte blocks from a chain of fixed-capacity regions.
// [Pool] applies the same discipline to typed values, so that nodes holding
// Go pointers can be pooled without hiding those pointers from the garbage
// collector.
//
// Neither allocator is safe for concurrent use.
package arena
