package web

// indexHTML is the input form served at GET /. Kept inline so the
// binary stays self-contained.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.AppName}}</title>
<style>
  body { font-family: Georgia, serif; max-width: 42rem; margin: 3rem auto; padding: 0 1rem; color: #1c1f26; }
  h1 { font-size: 1.6rem; }
  form { margin: 1.5rem 0; display: flex; flex-wrap: wrap; gap: 0.75rem; align-items: center; }
  input[type=text] { font-family: monospace; padding: 0.4rem 0.5rem; border: 1px solid #aab; border-radius: 4px; }
  #expr { flex: 1; min-width: 14rem; }
  #var { width: 3rem; }
  button { padding: 0.4rem 1rem; border: 1px solid #399ee6; border-radius: 4px; background: #399ee6; color: white; cursor: pointer; }
  .hint { color: #667; font-size: 0.9rem; }
  code { background: #eef1f5; padding: 0.1rem 0.3rem; border-radius: 3px; }
</style>
</head>
<body>
<h1>{{.AppName}}</h1>
<p>Step-by-step explanations for indefinite integrals.</p>
<form action="/steps" method="get">
  <input type="text" id="expr" name="expr" placeholder="2*x*exp(x^2)" autofocus required>
  <label for="var">d</label><input type="text" id="var" name="var" value="{{.Variable}}">
  <label><input type="checkbox" name="basic" value="1"> basic rules only</label>
  <button type="submit">Explain</button>
</form>
<p class="hint">Try <a href="/steps?expr=x^2%2B3*x">x^2+3*x</a>,
<a href="/steps?expr=2*x*exp(x^2)">2*x*exp(x^2)</a>, or
<a href="/steps?expr=sin(x)*cos(x)">sin(x)*cos(x)</a>.</p>
<p class="hint">The same document is available as JSON from <code>/api/steps?expr=...</code>.</p>
</body>
</html>
`
