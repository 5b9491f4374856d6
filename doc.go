// Package pocketui is a retained-mode UI toolkit with an iOS-flavored
// view API, rendered in software and presented through [Ebitengine].
//
// Pocketui provides the view hierarchy, frame/bounds layout with
// autoresizing, a drawing context with paths, text and graphics-state
// stack, touch dispatch with a first responder, attribute animation,
// and a small set of standard widgets.
//
// # Quick start
//
// Build a view tree and present it. Present blocks until the window
// closes:
//
//	root := pocketui.NewView()
//	root.SetBackgroundColor("white")
//	root.SetFrame(pocketui.Rect{Width: 400, Height: 300})
//
//	btn := pocketui.NewButton()
//	btn.SetTitle("Tap me")
//	btn.SetCenter(pocketui.Point{X: 200, Y: 150})
//	btn.SetAction(func(sender *pocketui.Button) {
//		sender.SetTitle("Tapped!")
//	})
//	root.AddSubview(btn.View)
//
//	pocketui.Present(root)
//
// # View hierarchy
//
// Every visual element is a [View] or wraps one. Views form a tree;
// children draw above their parent in order, and coordinates are local
// to each view's bounds. [View.SetFlex] flags ("WHLRTB") control how a
// view follows its parent's resizes.
//
// Custom drawing goes through the DrawFunc hook, which receives a
// [Context] scoped to the view's local coordinate system:
//
//	v.DrawFunc = func(v *pocketui.View, ctx *pocketui.Context) {
//		ctx.SetColor(pocketui.Red)
//		pocketui.NewPathOval(0, 0, v.Width(), v.Height()).Fill(ctx)
//	}
//
// # Animation
//
// [Animator.Animate] interpolates view attributes declaratively with
// smooth-step easing (tweened via [gween]):
//
//	w.Animator().Animate(func(b *pocketui.Batch) {
//		b.SetAlpha(v, 0)
//		b.SetX(v, 200)
//	}, 0.3, 0, func() { v.RemoveFromSuperview() })
//
// Rasterization lives behind the [raster.Surface] interface in the
// raster subpackage; the default implementation is the software
// renderer from [gg]. Headless and offscreen rendering are available
// through [HeadlessBackend] and [NewImageContext].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [gg]: https://github.com/gogpu/gg
package pocketui
