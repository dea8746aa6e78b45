package nereval

import "sort"

// block is the index range a tag occupies in a partitioned slice.
type block struct {
	start int
	size  int
}

func (b block) end() int {
	return b.start + b.size
}

// partition reorders an object slice into contiguous tag blocks laid
// end-to-end in the fixed tag order, sorted by id within each block.
// Objects with an unrecognized tag are dropped.
type partition[T Object] struct {
	objects []T
	blocks  map[Tag]block
}

func newPartition[T Object](objects []T) *partition[T] {
	p := &partition[T]{
		blocks: make(map[Tag]block, len(tagOrder)),
	}

	for _, tag := range Tags() {
		var group []T
		for _, obj := range objects {
			if obj.Tag() == tag {
				group = append(group, obj)
			}
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ID() < group[j].ID()
		})

		p.blocks[tag] = block{start: len(p.objects), size: len(group)}
		p.objects = append(p.objects, group...)
	}

	return p
}

// start returns the first index of the tag's block.
func (p *partition[T]) start(tag Tag) int {
	return p.blocks[tag].start
}

// end returns the index one past the tag's block.
func (p *partition[T]) end(tag Tag) int {
	return p.blocks[tag].end()
}

// size returns the number of objects carrying the tag.
func (p *partition[T]) size(tag Tag) int {
	return p.blocks[tag].size
}

// len returns the total number of retained objects.
func (p *partition[T]) len() int {
	return len(p.objects)
}
