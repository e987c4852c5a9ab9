package templates

// theme is inlined into the head of every full page.
const theme = `
  :root {
    --ink: #0d1117;
    --paper: #f5f0e8;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --accent2: #2c6e49;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body {
    background: var(--paper);
    color: var(--ink);
    font-family: 'IBM Plex Sans', sans-serif;
    background-image:
      repeating-linear-gradient(0deg, transparent, transparent 27px, var(--rule) 27px, var(--rule) 28px);
    min-height: 100vh;
    margin: 0;
  }
  a { color: inherit; }
  .mono { font-family: 'IBM Plex Mono', monospace; }
  .card {
    background: rgba(255,255,255,0.7);
    border: 1px solid var(--ledger);
    border-left: 4px solid var(--ink);
  }
  .field-label {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.6rem;
    font-weight: 600;
    letter-spacing: 0.1em;
    text-transform: uppercase;
    color: var(--muted);
    display: block;
    margin-bottom: 2px;
  }
  input, select {
    background: white;
    border: 1px solid var(--rule);
    border-bottom: 2px solid var(--ink);
    padding: 6px 8px;
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.85rem;
    width: 100%;
    outline: none;
    transition: border-color 0.15s;
  }
  input:focus, select:focus { border-bottom-color: var(--accent); }
  .is-invalid { border-bottom-color: var(--accent); }
  .invalid-feedback {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.7rem;
    color: var(--accent);
    margin-top: 2px;
    min-height: 1em;
  }
  .btn {
    display: inline-block;
    font-family: 'IBM Plex Mono', monospace;
    font-weight: 600;
    font-size: 0.8rem;
    letter-spacing: 0.08em;
    padding: 8px 18px;
    border: 2px solid var(--ink);
    cursor: pointer;
    transition: all 0.15s;
    text-transform: uppercase;
    text-decoration: none;
  }
  .btn-sm { padding: 5px 12px; font-size: 0.7rem; }
  .btn-primary { background: var(--ink); color: white; }
  .btn-primary:hover { background: var(--accent); border-color: var(--accent); }
  .btn-danger { background: white; color: var(--accent); border-color: var(--accent); }
  .btn-danger:hover { background: var(--accent); color: white; }
  .btn-success { background: var(--accent2); color: white; border-color: var(--accent2); }
  .btn-success:hover { filter: brightness(1.1); }
  .btn-link { border-color: transparent; background: none; color: var(--muted); }
  .btn[disabled] { opacity: 0.6; cursor: default; }
  .section-header {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.7rem;
    font-weight: 600;
    letter-spacing: 0.18em;
    text-transform: uppercase;
    color: var(--muted);
    border-bottom: 1px solid var(--rule);
    padding-bottom: 4px;
    margin-bottom: 16px;
  }
  .grid { display: grid; grid-template-columns: 7fr 5fr; gap: 12px 16px; }
  table.roster { width: 100%; border-collapse: collapse; background: rgba(255,255,255,0.7); }
  table.roster th {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.65rem;
    letter-spacing: 0.12em;
    text-transform: uppercase;
    text-align: left;
    background: var(--ink);
    color: white;
    padding: 8px 10px;
  }
  table.roster td { padding: 8px 10px; border-bottom: 1px solid var(--ledger); font-size: 0.85rem; }
  table.roster tr:nth-child(even) td { background: rgba(232,224,204,0.35); }
  .text-center { text-align: center; }
  .thumb { height: 28px; width: 28px; object-fit: cover; border: 1px solid var(--rule); vertical-align: middle; }
  .alert {
    font-family: 'IBM Plex Mono', monospace;
    font-size: 0.8rem;
    padding: 10px 14px;
    margin-bottom: 12px;
    border-left: 4px solid;
    background: white;
  }
  .alert-success { border-color: var(--accent2); color: var(--accent2); }
  .alert-error { border-color: var(--accent); color: var(--accent); }
  .spinner {
    display: inline-block;
    width: 0.9em; height: 0.9em;
    border: 2px solid currentColor;
    border-right-color: transparent;
    border-radius: 50%;
    animation: spin 0.75s linear infinite;
    vertical-align: -0.1em;
  }
  .spinner-lg { width: 2rem; height: 2rem; border-width: 3px; }
  @keyframes spin { to { transform: rotate(360deg); } }
  .htmx-indicator { display: none; }
  .htmx-request .htmx-indicator, .htmx-request.htmx-indicator { display: inline-block; }
  .htmx-request .when-idle { display: none; }
`
