package ir

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch x := n.(type) {
	case *Document:
		return []Node{&x.Items}
	case *Record:
		return []Node{&x.Items}
	case *List:
		return []Node{&x.Items}
	case *RecordItems:
		var content Node
		if x.Content != nil {
			content = x.Content
		}
		return containerChildren(content, x.Tail, x.Trailing)
	case *ListItems:
		var content Node
		if x.Content != nil {
			content = x.Content
		}
		return containerChildren(content, x.Tail, x.Trailing)
	case *RecordContent:
		res := make([]Node, 0, 2+len(x.Rest))
		res = append(res, x.Lead, x.First)
		for _, e := range x.Rest {
			res = append(res, e)
		}
		return res
	case *ListContent:
		res := make([]Node, 0, 2+len(x.Rest))
		res = append(res, x.Lead, x.First)
		for _, e := range x.Rest {
			res = append(res, e)
		}
		return res
	case *RecordElement:
		return []Node{x.BeforeComma, x.AfterComma, x.Pair}
	case *ListElement:
		return []Node{x.BeforeComma, x.AfterComma, x.Value}
	case *KeyValue:
		return []Node{x.BeforeColon, x.AfterColon, x.Value}
	case *Discriminator:
		if x.Payload == nil {
			return nil
		}
		return []Node{x.Payload}
	case *Payload:
		return []Node{x.Sep, x.Value}
	case *TrailingComma:
		return []Node{x.After}
	case Filler:
		res := make([]Node, len(x))
		for i := range x {
			res[i] = x[i]
		}
		return res
	default:
		return nil
	}
}

func containerChildren(content Node, tail Filler, trailing *TrailingComma) []Node {
	res := make([]Node, 0, 3)
	if content != nil {
		res = append(res, content)
	}
	res = append(res, tail)
	if trailing != nil {
		res = append(res, trailing)
	}
	return res
}

// Walk calls f for n and its descendants in source order. When f returns
// false the descendants of that node are skipped. Walk uses an explicit
// stack, so the depth of the tree does not grow the goroutine stack.
func Walk(n Node, f func(Node) bool) {
	stack := []Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(top) {
			continue
		}
		kids := Children(top)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}
