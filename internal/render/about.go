package render

// AboutMarkdown is the text behind the about pane.
const AboutMarkdown = `# rupavali

A demonstration of Paninian word generation. Pick a dhatu from the
dhatupatha, then explore its conjugated (tinanta) and nominal (krdanta)
forms, with the prakriya behind every form one keypress away.

## Data

- A dhatupatha excerpt spanning the major ganas.
- A sutrapatha excerpt supplying the rule texts shown in prakriyas.
- Forms produced by the configured engine: the bundled tables by
  default, or a vidyut-prakriya service or subprocess.

## Scripts

Text can be shown in SLP1, Harvard-Kyoto, IAST, or Devanagari.
Filtering accepts input in any of these.

## Sharing

Every selection is captured in a locator string, shown live in the
session bar. Paste it into the HTTP API query string, or into
` + "`rupavali browse`" + `, to restore the exact view.
`
