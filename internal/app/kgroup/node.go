package kgroup

// Node 是单链表节点。
//
// Val 是不透明的负载，算法不关心其类型；Next 为 nil 表示链表结束。
// 链表必须无环，整条链表归持有 head 的调用方所有。
type Node[T any] struct {
	Val  T
	Next *Node[T]
}

// FromSlice 按切片顺序构造链表，空切片返回 nil。
func FromSlice[T any](vals []T) *Node[T] {
	dummy := &Node[T]{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &Node[T]{Val: v}
		tail = tail.Next
	}
	return dummy.Next
}

// Values 按链表顺序收集负载。
func Values[T any](head *Node[T]) []T {
	var out []T
	for cur := head; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}
	return out
}

// Len 返回节点个数（一次遍历）。
func Len[T any](head *Node[T]) int {
	n := 0
	for cur := head; cur != nil; cur = cur.Next {
		n++
	}
	return n
}
