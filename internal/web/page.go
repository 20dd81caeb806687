package web

// indexHTML is the single-page UI. Both tabs call the JSON API; no state
// survives a reload.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>NiceJob Tools</title>
<style>
body{margin:0;background:#f9fafb;color:#1f2937;font-family:system-ui,sans-serif}
.wrap{max-width:64rem;margin:0 auto;padding:2rem 1rem}
.logo{display:flex;justify-content:center;margin-bottom:2rem}
.logo img{height:40px}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:1rem;box-shadow:0 10px 15px rgba(0,0,0,.08);padding:2rem}
.tabs{display:flex;justify-content:center;gap:.5rem;margin-bottom:2rem}
.tabs button{padding:.5rem 1rem;font-weight:600;border:0;border-radius:.375rem;background:#e5e7eb;color:#4b5563;cursor:pointer}
.tabs button.active{background:#3b82f6;color:#fff}
h2{text-align:center;margin:0}
.sub{text-align:center;color:#6b7280;margin:.25rem 0 2rem}
textarea{width:100%;box-sizing:border-box;padding:.75rem;border:1px solid #d1d5db;border-radius:.375rem;font-family:ui-monospace,monospace}
.primary{margin-top:1rem;padding:.75rem 2rem;background:#3b82f6;color:#fff;font-weight:700;border:0;border-radius:.5rem;cursor:pointer}
.primary:hover{background:#2563eb}
.grid{display:grid;grid-template-columns:1fr 1fr;gap:1.5rem}
@media (max-width:768px){.grid{grid-template-columns:1fr}}
pre{background:#f3f4f6;border:1px solid #e5e7eb;border-radius:.5rem;padding:1rem;padding-right:4rem;white-space:pre-wrap;word-break:break-all;overflow:auto}
.box{position:relative}
.copy{position:absolute;top:2.5rem;right:.5rem;padding:.25rem .5rem;font-size:.75rem;border:0;border-radius:.375rem;background:#e5e7eb;cursor:pointer}
.info{background:#eff6ff;border:1px solid #bfdbfe;border-radius:.5rem;padding:1rem;color:#1e40af;font-family:ui-monospace,monospace;font-size:.875rem;white-space:pre-wrap}
.empty{background:#f3f4f6;border:1px solid #e5e7eb;border-radius:.5rem;padding:1rem;color:#6b7280;text-align:center}
.hidden{display:none}
footer{text-align:center;margin-top:1.5rem;color:#9ca3af;font-size:.875rem}
</style>
</head>
<body>
<div class="wrap">
  <div class="logo"><img src="/logo" alt="NiceJob Logo"></div>
  <div class="card">
    <div class="tabs">
      <button id="tab-encoder" class="active" onclick="showTab('encoder')">Secure Encoder</button>
      <button id="tab-converter" onclick="showTab('converter')">Script Converter</button>
    </div>

    <section id="panel-encoder">
      <h2>Secure Encoder</h2>
      <p class="sub">Encode text securely for your integrations.</p>
      <label for="text-input">Your Text</label>
      <textarea id="text-input" rows="5" placeholder="Type or paste your text here..."></textarea>
      <button class="primary" style="width:100%" onclick="encodeText()">Encode Text</button>
      <div id="encode-out" class="box hidden" style="margin-top:2rem">
        <label>Encoded Result</label>
        <pre id="result-output"></pre>
        <button class="copy" onclick="copyFrom('result-output', this)">Copy</button>
      </div>
    </section>

    <section id="panel-converter" class="hidden">
      <h2>Script Tag Converter</h2>
      <p class="sub">Convert HTML snippets to React / Next.js components.</p>
      <div class="grid">
        <div>
          <label for="raw-code">Input HTML</label>
          <textarea id="raw-code" rows="15" placeholder="&lt;!-- Google Tag Manager --&gt;
&lt;script&gt;(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':
new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],
j=d.createElement(s),dl=l!='dataLayer'?'&amp;l='+l:'';j.async=true;j.src=
'https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);
})(window,document,'script','dataLayer','GTM-XXXX');&lt;/script&gt;
&lt;!-- End Google Tag Manager --&gt;"></textarea>
        </div>
        <div>
          <div id="conv-empty" class="empty">Output will appear here...</div>
          <div id="conv-instr" class="hidden"><h3>Instructions</h3><div id="instructions" class="info"></div></div>
          <div id="conv-head" class="box hidden"><h3>Head Code</h3><pre id="head-code"></pre>
            <button class="copy" onclick="copyFrom('head-code', this)">Copy</button></div>
          <div id="conv-body" class="box hidden"><h3>Body Code</h3><pre id="body-code"></pre>
            <button class="copy" onclick="copyFrom('body-code', this)">Copy</button></div>
        </div>
      </div>
      <div style="text-align:center"><button class="primary" onclick="convertCode()">Convert Code</button></div>
    </section>
  </div>
  <footer>A NiceJob Tool</footer>
</div>
<script>
function showTab(name) {
  ['encoder', 'converter'].forEach(function (t) {
    document.getElementById('panel-' + t).classList.toggle('hidden', t !== name);
    document.getElementById('tab-' + t).classList.toggle('active', t === name);
  });
}
function post(path, payload) {
  return fetch(path, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(payload)
  }).then(function (r) { return r.json(); });
}
function show(id, on) { document.getElementById(id).classList.toggle('hidden', !on); }
function encodeText() {
  post('/api/encode', {text: document.getElementById('text-input').value}).then(function (res) {
    if (res.error && !res.result) { console.error('Encoding Error:', res.error); return; }
    if (res.error) { console.error('Encoding Error:', res.error); }
    document.getElementById('result-output').textContent = res.result || '';
    show('encode-out', !!res.result);
  });
}
function convertCode() {
  post('/api/convert', {html: document.getElementById('raw-code').value}).then(function (res) {
    if (res.error) { console.error(res.error); return; }
    document.getElementById('head-code').textContent = res.head;
    document.getElementById('body-code').textContent = res.body;
    document.getElementById('instructions').textContent = res.instructions;
    show('conv-head', !!res.head);
    show('conv-body', !!res.body);
    show('conv-instr', !!res.instructions);
    show('conv-empty', !res.head && !res.body && !res.instructions);
  });
}
function copyFrom(id, btn) {
  navigator.clipboard.writeText(document.getElementById(id).textContent).then(function () {
    btn.textContent = 'Copied!';
    setTimeout(function () { btn.textContent = 'Copy'; }, 2000);
  }).catch(function (err) {
    console.error('Failed to copy text: ', err);
  });
}
</script>
</body>
</html>`
