package loop

// fitTermSize picks the largest render area that fits the terminal, stays
// within the max render resolution and keeps the field's aspect ratio.
// Each terminal row holds two pixels, so a row counts double. The area is
// centered; offsets are 0-based.
func fitTermSize(termWidth, termHeight int, logicalWidth, logicalHeight float64) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 0), MaxTermWidth)
	renderHeight = min(max(termHeight, 0), MaxTermHeight)

	if logicalWidth > 0 && logicalHeight > 0 {
		pixelHeight := float64(renderHeight * 2)
		if float64(renderWidth)*logicalHeight > pixelHeight*logicalWidth {
			renderWidth = int(pixelHeight * logicalWidth / logicalHeight)
		} else {
			renderHeight = int(float64(renderWidth) * logicalHeight / logicalWidth / 2)
		}
	}

	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
