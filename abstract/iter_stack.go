package abstract

// iterStack is a stack of nodes used by the iterative in-order walk.
type iterStack[T, A any, AP Aug[T, A]] struct {
	a    iterStackArr[T, A, AP]
	aLen int16 // -1 when using s
	s    []*Node[T, A, AP]
}

const iterStackDepth = 16

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[T, A any, AP Aug[T, A]] [iterStackDepth]*Node[T, A, AP]

func (is *iterStack[T, A, AP]) push(n *Node[T, A, AP]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*Node[T, A, AP], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[T, A, AP]) pop() *Node[T, A, AP] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[T, A, AP]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}
