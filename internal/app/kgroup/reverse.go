package kgroup

import (
	"errors"
	"fmt"
)

// ErrInvalidGroupSize 表示组大小 k 不合法（k <= 0）。
//
// 在修改任何指针之前返回，调用方拿到错误时链表保持原样。
var ErrInvalidGroupSize = errors.New("invalid group size")

// ReverseInGroups 以 k 个节点为一组原地翻转链表，返回新的头节点。
//
// 不足 k 个的尾部保持原顺序。空链表返回 nil；k == 1 或 n < k 时链表不变。
// 时间 O(n)，额外空间 O(1)（不计哨兵节点）。
func ReverseInGroups[T any](head *Node[T], k int) (*Node[T], error) {
	newHead, _, err := reverseInGroups(head, k)
	return newHead, err
}

// reverseInGroups 额外返回实际翻转的组数，供 Reverser 打点用。
func reverseInGroups[T any](head *Node[T], k int) (*Node[T], int, error) {
	if k <= 0 {
		return head, 0, fmt.Errorf("%w: k=%d", ErrInvalidGroupSize, k)
	}

	count := Len(head)

	dummy := &Node[T]{Next: head}
	prevGroupTail := dummy
	curr := head
	groups := 0
	for count >= k {
		newHead := reverseSegment(curr, k)
		prevGroupTail.Next = newHead
		// 翻转后 curr 成为本组的尾，其 Next 已经指向下一组的头
		prevGroupTail = curr
		curr = curr.Next
		count -= k
		groups++
	}
	return dummy.Next, groups, nil
}

// reverseSegment 翻转从 head 开始的恰好 k 个节点，返回这一段新的头。
// 调用方保证从 head 出发至少有 k 个节点。
func reverseSegment[T any](head *Node[T], k int) *Node[T] {
	var prev *Node[T]
	curr := head
	for ; k > 0; k-- {
		next := curr.Next
		curr.Next = prev
		prev = curr
		curr = next
	}
	// 原来的段首现在是段尾，接回后续节点
	head.Next = curr
	return prev
}
